package models

import "time"

type Shift struct {
	ShiftID       string     `json:"shiftId" bson:"shiftId"`
	UserID        string     `json:"userId" bson:"userId"`
	ClockIn       time.Time  `json:"clockIn" bson:"clockIn"`
	Open          bool       `json:"open" bson:"open"`
	ClockOut      *time.Time `json:"clockOut,omitempty" bson:"clockOut,omitempty"`
	DurationHours float64    `json:"durationHours,omitempty" bson:"durationHours,omitempty"`
}
