package models

import "time"

// Bride statuses
const (
	BrideInProgress = "inProgress"
	BrideCompleted  = "completed"
	BrideCancelled  = "cancelled"
)

type Bride struct {
	BrideID          string     `json:"brideId" bson:"brideId"`
	FullName         string     `json:"fullName" bson:"fullName"`
	Email            string     `json:"email" bson:"email"`
	Phone            string     `json:"phone,omitempty" bson:"phone,omitempty"`
	WeddingDate      string     `json:"weddingDate,omitempty" bson:"weddingDate,omitempty"`
	Status           string     `json:"status" bson:"status"`
	Paid             bool       `json:"paid" bson:"paid"`
	AssignedStaff    string     `json:"assignedStaff,omitempty" bson:"assignedStaff,omitempty"`
	Images           []string   `json:"images,omitempty" bson:"images,omitempty"`
	Thumbnails       []string   `json:"thumbnails,omitempty" bson:"thumbnails,omitempty"`
	LastReminderSent *time.Time `json:"lastReminderSent,omitempty" bson:"lastReminderSent,omitempty"`
	CreatedAt        time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// HistoryEntry is one line of a bride's activity log.
type HistoryEntry struct {
	BrideID   string    `json:"brideId" bson:"brideId"`
	Action    string    `json:"action" bson:"action"`
	Detail    string    `json:"detail,omitempty" bson:"detail,omitempty"`
	UserID    string    `json:"userId,omitempty" bson:"userId,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
