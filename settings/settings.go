package settings

import (
	"encoding/json"
	"net/http"

	"github.com/Roei786/Bridal-salon-sub000/db"
	"github.com/Roei786/Bridal-salon-sub000/globals"
	"github.com/Roei786/Bridal-salon-sub000/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserSettings holds per-staff UI and notification preferences.
type UserSettings struct {
	UserID        string `json:"userID,omitempty" bson:"userID"`
	Theme         string `json:"theme" bson:"theme"`
	Notifications bool   `json:"notifications" bson:"notifications"`
	Language      string `json:"language" bson:"language"`
	TimeZone      string `json:"time_zone" bson:"time_zone"`
	DailyReminder string `json:"daily_reminder" bson:"daily_reminder"`
}

func getDefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:        userID,
		Theme:         "light",
		Notifications: true,
		Language:      "hebrew",
		TimeZone:      "Asia/Jerusalem",
		DailyReminder: "09:00",
	}
}

var validSettings = map[string]bool{
	"theme":          true,
	"notifications":  true,
	"language":       true,
	"time_zone":      true,
	"daily_reminder": true,
}

// GetUserSettings returns the caller's settings, creating defaults on first use.
func GetUserSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var userSettings UserSettings
	err := db.SettingsCollection.FindOne(r.Context(), bson.M{"userID": userID}).Decode(&userSettings)
	if err == mongo.ErrNoDocuments {
		userSettings = getDefaultSettings(userID)
		_, _ = db.SettingsCollection.InsertOne(r.Context(), userSettings)
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, userSettings)
}

// UpdateUserSetting changes one setting by name.
func UpdateUserSetting(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	settingType := ps.ByName("type")
	if !validSettings[settingType] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid setting type")
		return
	}

	var input struct {
		Value any `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := db.SettingsCollection.UpdateOne(r.Context(),
		bson.M{"userID": userID},
		bson.M{"$set": bson.M{settingType: input.Value}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update setting")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Setting updated", nil)
}
