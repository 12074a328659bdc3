package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/db"
	"github.com/Roei786/Bridal-salon-sub000/mailer"
	"github.com/Roei786/Bridal-salon-sub000/rdx"
	"github.com/Roei786/Bridal-salon-sub000/utils"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const resetCodeTTL = 10 * time.Minute

// Mailer is the sender used for reset codes. Swapped in tests and wired to
// the SMTP sender in main.
var Mailer mailer.Sender = mailer.NewSMTPSenderFromEnv()

func requestPasswordResetHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// Do not reveal whether the address exists
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"email": input.Email}).Err()
	if err == nil {
		code := utils.GenerateRandomDigitString(6)
		if err := rdx.SetWithExpiry("pwreset:"+input.Email, code, resetCodeTTL); err != nil {
			log.Printf("Failed to cache reset code: %v", err)
			http.Error(w, "Failed to issue reset code", http.StatusInternalServerError)
			return
		}
		if err := Mailer.Send(mailer.TemplatePasswordReset, input.Email, map[string]string{"Code": code}); err != nil {
			log.Printf("Failed to send reset email to %s: %v", input.Email, err)
			http.Error(w, "Failed to send reset email", http.StatusInternalServerError)
			return
		}
	}

	utils.SendResponse(w, http.StatusOK, nil, "If the address is registered, a reset code was sent", nil)
}

func confirmPasswordResetHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil ||
		input.Email == "" || input.Code == "" || input.NewPassword == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	storedCode, err := rdx.RdxGet("pwreset:" + input.Email)
	if err != nil || storedCode != input.Code {
		http.Error(w, "Invalid or expired reset code", http.StatusUnauthorized)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	res, err := db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"email": input.Email},
		bson.M{"$set": bson.M{"password": string(hashed), "updated_at": time.Now()}},
	)
	if err != nil || res.MatchedCount == 0 {
		http.Error(w, "Failed to reset password", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxDel("pwreset:" + input.Email); err != nil {
		log.Printf("Failed to drop reset code: %v", err)
	}
	utils.SendResponse(w, http.StatusOK, nil, "Password updated", nil)
}
