package globals

import (
	"context"
	"os"
)

var (
	JwtSecret = []byte(jwtSecretFromEnv())
)

func jwtSecretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "bridal-salon-dev-secret"
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
