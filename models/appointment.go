package models

import "time"

// Appointment statuses
const (
	ApptPlanned   = "planned"
	ApptConfirmed = "confirmed"
	ApptCancelled = "cancelled"
)

// Appointment types
const (
	ApptFirstFitting = "firstFitting"
	ApptAlteration   = "alteration"
	ApptFinalFitting = "finalFitting"
	ApptHairMakeup   = "hairMakeup"
)

type Appointment struct {
	AppointmentID string    `json:"appointmentId" bson:"appointmentId"`
	BrideID       string    `json:"brideId" bson:"brideId"`
	Date          string    `json:"date" bson:"date"` // "YYYY-MM-DD HH:MM", local time
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Status        string    `json:"status" bson:"status"`
	Type          string    `json:"type" bson:"type"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

func ValidApptStatus(s string) bool {
	switch s {
	case ApptPlanned, ApptConfirmed, ApptCancelled:
		return true
	}
	return false
}

func ValidApptType(t string) bool {
	switch t {
	case ApptFirstFitting, ApptAlteration, ApptFinalFitting, ApptHairMakeup:
		return true
	}
	return false
}

// ApptTypeLabel maps an appointment type to the label used in emails and PDFs.
func ApptTypeLabel(t string) string {
	switch t {
	case ApptFirstFitting:
		return "First Fitting"
	case ApptAlteration:
		return "Alteration"
	case ApptFinalFitting:
		return "Final Fitting"
	case ApptHairMakeup:
		return "Hair & Makeup"
	}
	return t
}
