package brides

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/db"
	"github.com/Roei786/Bridal-salon-sub000/models"
	"github.com/Roei786/Bridal-salon-sub000/mq"
	"github.com/Roei786/Bridal-salon-sub000/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func genID() string {
	return "b" + utils.GenerateRandomString(14)
}

func validStatus(s string) bool {
	switch s {
	case models.BrideInProgress, models.BrideCompleted, models.BrideCancelled:
		return true
	}
	return false
}

// logHistory appends one entry to the bride activity log. Best effort; a
// history write failure never fails the request.
func logHistory(ctx context.Context, brideID, action, detail, userID string) {
	entry := models.HistoryEntry{
		BrideID:   brideID,
		Action:    action,
		Detail:    detail,
		UserID:    userID,
		Timestamp: time.Now(),
	}
	if _, err := db.HistoryCollection.InsertOne(ctx, entry); err != nil {
		log.Printf("History write for bride %s failed: %v", brideID, err)
	}
}

func ListBrides(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if name := r.URL.Query().Get("name"); name != "" {
		filter["fullName"] = bson.M{"$regex": name, "$options": "i"}
	}
	if status := r.URL.Query().Get("status"); status != "" {
		if !validStatus(status) {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown status")
			return
		}
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := db.BridesCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("List brides error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load brides")
		return
	}
	defer cur.Close(ctx)

	brides := []models.Bride{}
	for cur.Next(ctx) {
		var b models.Bride
		if err := cur.Decode(&b); err != nil {
			continue
		}
		brides = append(brides, b)
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"brides": brides})
}

func GetBride(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var b models.Bride
	err := db.BridesCollection.FindOne(r.Context(), bson.M{"brideId": ps.ByName("id")}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Bride not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load bride")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"bride": b})
}

func CreateBride(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var b models.Bride
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if b.FullName == "" || b.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if b.Status == "" {
		b.Status = models.BrideInProgress
	}
	if !validStatus(b.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown status")
		return
	}

	b.BrideID = genID()
	b.LastReminderSent = nil
	b.CreatedAt = time.Now()
	b.UpdatedAt = time.Now()

	if _, err := db.BridesCollection.InsertOne(r.Context(), b); err != nil {
		log.Printf("Insert bride error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save bride")
		return
	}

	logHistory(r.Context(), b.BrideID, "created", "", utils.GetUserIDFromRequest(r))
	go mq.Emit(context.Background(), "bride-created", models.Index{
		EntityType: "bride", EntityId: b.BrideID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"bride": b})
}

func UpdateBride(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := bson.M{}
	for _, k := range []string{"fullName", "email", "phone", "weddingDate", "status", "paid", "assignedStaff"} {
		if v, ok := fields[k]; ok {
			update[k] = v
		}
	}
	if len(update) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No updatable fields")
		return
	}
	if s, ok := update["status"].(string); ok && !validStatus(s) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown status")
		return
	}
	update["updatedAt"] = time.Now()

	res, err := db.BridesCollection.UpdateOne(r.Context(), bson.M{"brideId": id}, bson.M{"$set": update})
	if err != nil {
		log.Printf("Update bride %s error: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update bride")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Bride not found")
		return
	}

	logHistory(r.Context(), id, "updated", "", utils.GetUserIDFromRequest(r))
	go mq.Emit(context.Background(), "bride-updated", models.Index{
		EntityType: "bride", EntityId: id, Method: "PUT",
	})

	utils.SendResponse(w, http.StatusOK, nil, "Bride updated", nil)
}

func DeleteBride(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	res, err := db.BridesCollection.DeleteOne(r.Context(), bson.M{"brideId": id})
	if err != nil {
		log.Printf("Delete bride %s error: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete bride")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Bride not found")
		return
	}

	// Orphaned appointments are removed with their bride
	if _, err := db.AppointmentsCollection.DeleteMany(r.Context(), bson.M{"brideId": id}); err != nil {
		log.Printf("Delete appointments for bride %s error: %v", id, err)
	}

	go mq.Emit(context.Background(), "bride-deleted", models.Index{
		EntityType: "bride", EntityId: id, Method: "DELETE",
	})

	w.WriteHeader(http.StatusNoContent)
}

func GetBrideHistory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(100)
	cur, err := db.HistoryCollection.Find(r.Context(), bson.M{"brideId": id}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}
	defer cur.Close(r.Context())

	entries := []models.HistoryEntry{}
	for cur.Next(r.Context()) {
		var e models.HistoryEntry
		if err := cur.Decode(&e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"history": entries})
}
