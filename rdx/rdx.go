package rdx

import (
	"os"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/globals"
	"github.com/redis/go-redis/v9"
)

var Conn = redis.NewClient(&redis.Options{
	Addr: redisAddr(),
})

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHdel(hash, field string) (int64, error) {
	return Conn.HDel(globals.Ctx, hash, field).Result()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

// AcquireLock takes a best-effort distributed lock via SETNX. It returns
// false when another holder already owns the key.
func AcquireLock(key string, ttl time.Duration) (bool, error) {
	return Conn.SetNX(globals.Ctx, key, "1", ttl).Result()
}

func ReleaseLock(key string) {
	Conn.Del(globals.Ctx, key)
}
