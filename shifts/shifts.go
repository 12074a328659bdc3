// Package shifts tracks staff attendance: one clock-in/clock-out interval per
// entry, with at most one open shift per user at any time.
package shifts

import (
	"log"
	"net/http"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/dates"
	"github.com/Roei786/Bridal-salon-sub000/db"
	"github.com/Roei786/Bridal-salon-sub000/models"
	"github.com/Roei786/Bridal-salon-sub000/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DurationHours computes the worked hours of a closed shift.
func DurationHours(clockIn, clockOut time.Time) float64 {
	return clockOut.Sub(clockIn).Hours()
}

// ClockIn opens a shift for the authenticated user. A second clock-in while a
// shift is open is rejected; the open shift is returned so the client can
// resume it.
func ClockIn(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shift := models.Shift{
		ShiftID: "s" + utils.GenerateRandomString(14),
		UserID:  userID,
		ClockIn: time.Now(),
		Open:    true,
	}

	err := store.Start(r.Context(), shift)
	if err == ErrShiftOpen {
		open, ferr := store.FindOpen(r.Context(), userID)
		if ferr != nil {
			// The winner may have clocked out between our insert and this read
			utils.RespondWithError(w, http.StatusConflict, "Shift already open")
			return
		}
		utils.RespondWithJSON(w, http.StatusConflict, map[string]any{
			"error": "Shift already open",
			"shift": open,
		})
		return
	}
	if err != nil {
		log.Printf("Clock-in for %s failed: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to clock in")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"shift": shift})
}

// ClockOut closes the user's open shift and computes its duration.
func ClockOut(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	open, err := store.FindOpen(r.Context(), userID)
	if err == ErrNoOpenShift {
		utils.RespondWithError(w, http.StatusConflict, "No open shift")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load open shift")
		return
	}

	now := time.Now()
	hours := DurationHours(open.ClockIn, now)

	if err := store.Close(r.Context(), open.ShiftID, now, hours); err != nil {
		log.Printf("Clock-out for %s failed: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to clock out")
		return
	}

	open.ClockOut = &now
	open.DurationHours = hours
	open.Open = false
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"shift": open})
}

// ListShifts returns the authenticated user's shifts, newest first.
func ListShifts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "clockIn", Value: -1}}).SetLimit(200)
	cur, err := db.ShiftsCollection.Find(r.Context(), bson.M{"userId": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load shifts")
		return
	}
	defer cur.Close(r.Context())

	shifts := []models.Shift{}
	for cur.Next(r.Context()) {
		var s models.Shift
		if err := cur.Decode(&s); err != nil {
			continue
		}
		shifts = append(shifts, s)
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"shifts": shifts})
}

// ListUserShifts returns any user's shifts for the hours report. Optional
// start/end query params (YYYY-MM-DD) restrict the range by clock-in date.
func ListUserShifts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("userid")

	filter := bson.M{"userId": userID}
	if start := r.URL.Query().Get("start"); start != "" {
		from, err := time.ParseInLocation(dates.DateOnlyLayout, start, time.Local)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid start date")
			return
		}
		filter["clockIn"] = bson.M{"$gte": from}
	}
	if end := r.URL.Query().Get("end"); end != "" {
		to, err := time.ParseInLocation(dates.DateOnlyLayout, end, time.Local)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid end date")
			return
		}
		cond, _ := filter["clockIn"].(bson.M)
		if cond == nil {
			cond = bson.M{}
		}
		cond["$lt"] = to.AddDate(0, 0, 1)
		filter["clockIn"] = cond
	}

	opts := options.Find().SetSort(bson.D{{Key: "clockIn", Value: 1}})
	cur, err := db.ShiftsCollection.Find(r.Context(), filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load shifts")
		return
	}
	defer cur.Close(r.Context())

	shifts := []models.Shift{}
	total := 0.0
	for cur.Next(r.Context()) {
		var s models.Shift
		if err := cur.Decode(&s); err != nil {
			continue
		}
		shifts = append(shifts, s)
		total += s.DurationHours
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"shifts":     shifts,
		"totalHours": total,
	})
}
