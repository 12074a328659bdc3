package appointments

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/Roei786/Bridal-salon-sub000/models"
	"github.com/Roei786/Bridal-salon-sub000/mq"
	"github.com/Roei786/Bridal-salon-sub000/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func ListAppointments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var (
		appts []models.Appointment
		err   error
	)

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	brideID := r.URL.Query().Get("brideId")

	switch {
	case brideID != "":
		appts, err = ListByBride(r.Context(), brideID)
	case start != "" && end != "":
		appts, err = ListByDateRange(r.Context(), start, end)
	default:
		appts, err = List(r.Context())
	}
	if err != nil {
		log.Printf("List appointments error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load appointments")
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"appointments": appts})
}

func GetAppointment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	a, err := Get(r.Context(), ps.ByName("id"))
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Appointment not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load appointment")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"appointment": a})
}

func CreateAppointment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var a models.Appointment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Validate before any I/O
	if a.BrideID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "A bride must be selected")
		return
	}
	if a.Date == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing appointment date")
		return
	}
	if _, err := NormalizeDateField(a.Date); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid appointment date")
		return
	}
	if a.Type != "" && !models.ValidApptType(a.Type) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown appointment type")
		return
	}
	if a.Status != "" && !models.ValidApptStatus(a.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown appointment status")
		return
	}

	if err := Create(r.Context(), &a); err != nil {
		log.Printf("Create appointment error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save appointment")
		return
	}

	broadcastUpdate()
	go mq.Emit(context.Background(), "appointment-created", models.Index{
		EntityType: "appointment",
		EntityId:   a.AppointmentID,
		Method:     "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"appointment": a})
}

func UpdateAppointment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := bson.M{}
	for _, k := range []string{"date", "notes", "status", "type", "brideId"} {
		if v, ok := fields[k]; ok {
			update[k] = v
		}
	}
	if len(update) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No updatable fields")
		return
	}
	if s, ok := update["status"].(string); ok && !models.ValidApptStatus(s) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown appointment status")
		return
	}
	if t, ok := update["type"].(string); ok && !models.ValidApptType(t) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown appointment type")
		return
	}
	if b, ok := update["brideId"].(string); ok && b == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "A bride must be selected")
		return
	}
	if d, ok := update["date"]; ok {
		s, isStr := d.(string)
		if !isStr {
			utils.RespondWithError(w, http.StatusBadRequest, "Date must be a string")
			return
		}
		if _, err := NormalizeDateField(s); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid appointment date")
			return
		}
	}

	err := Update(r.Context(), id, update)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Appointment not found")
		return
	}
	if err != nil {
		log.Printf("Update appointment %s error: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	broadcastUpdate()
	go mq.Emit(context.Background(), "appointment-updated", models.Index{
		EntityType: "appointment",
		EntityId:   id,
		Method:     "PUT",
	})

	utils.SendResponse(w, http.StatusOK, nil, "Appointment updated", nil)
}

func DeleteAppointment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	err := Delete(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Appointment not found")
		return
	}
	if err != nil {
		log.Printf("Delete appointment %s error: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	broadcastUpdate()
	go mq.Emit(context.Background(), "appointment-deleted", models.Index{
		EntityType: "appointment",
		EntityId:   id,
		Method:     "DELETE",
	})

	w.WriteHeader(http.StatusNoContent)
}
