// Package dates normalizes the date representations found in salon records.
// Appointment dates are persisted as "YYYY-MM-DD HH:MM" strings so that
// lexicographic order matches chronological order; older records may carry a
// native time.Time or a Mongo datetime instead.
package dates

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StoredLayout   = "2006-01-02 15:04"
	DateOnlyLayout = "2006-01-02"
)

// Normalize converts a stored date value into a time.Time. Accepted inputs:
// time.Time, primitive.DateTime, and strings in StoredLayout or
// DateOnlyLayout (parsed as local time). Anything else is an error; callers
// decide whether to skip the record or fail the request.
func Normalize(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case *time.Time:
		if d == nil {
			return time.Time{}, fmt.Errorf("nil date")
		}
		return *d, nil
	case primitive.DateTime:
		return d.Time(), nil
	case string:
		return ParseStored(d)
	}
	return time.Time{}, fmt.Errorf("unsupported date value %T", v)
}

// ParseStored parses a stored date string. Strings containing a space are
// treated as date plus time; bare strings as calendar dates at midnight.
func ParseStored(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	layout := DateOnlyLayout
	if strings.Contains(s, " ") {
		layout = StoredLayout
	}
	t, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatStored serializes t into the canonical stored string form.
func FormatStored(t time.Time) string {
	return t.Format(StoredLayout)
}

// DayOffset returns floor((t-now)/24h): whole days between now and t.
func DayOffset(now, t time.Time) int {
	return int(math.Floor(t.Sub(now).Hours() / 24))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay returns midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
