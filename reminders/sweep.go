// Package reminders implements the appointment reminder sweep: brides with an
// appointment 0-1 or 5-8 days out get at most one reminder email per calendar
// day listing every qualifying appointment.
package reminders

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/dates"
	"github.com/Roei786/Bridal-salon-sub000/mailer"
	"github.com/Roei786/Bridal-salon-sub000/models"
)

// InWindow reports whether a day offset falls in the "tomorrow" window [0,2)
// or the "next week" window [5,9).
func InWindow(offset int) bool {
	return (offset >= 0 && offset < 2) || (offset >= 5 && offset < 9)
}

// SelectDue keeps the appointments whose day offset from now is in a reminder
// window. Input order is preserved; records with unparseable dates are logged
// and skipped.
func SelectDue(appts []models.Appointment, now time.Time) []models.Appointment {
	var due []models.Appointment
	for _, a := range appts {
		t, err := dates.Normalize(a.Date)
		if err != nil {
			log.Printf("Sweep: skipping appointment %s with bad date: %v", a.AppointmentID, err)
			continue
		}
		if InWindow(dates.DayOffset(now, t)) {
			due = append(due, a)
		}
	}
	return due
}

// BrideIDs returns the distinct bride IDs of appts in first-seen order.
func BrideIDs(appts []models.Appointment) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, a := range appts {
		if a.BrideID == "" || seen[a.BrideID] {
			continue
		}
		seen[a.BrideID] = true
		ids = append(ids, a.BrideID)
	}
	return ids
}

// ComposeLines renders the appointment list for the reminder email body,
// one numbered line per appointment.
func ComposeLines(appts []models.Appointment) string {
	var b strings.Builder
	for i, a := range appts {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, models.ApptTypeLabel(a.Type), a.Date)
	}
	return b.String()
}

// BrideStore is the bride-side collaborator of the sweep. ClaimReminder is a
// conditional check-and-stamp: it sets lastReminderSent to now only when the
// bride was not already reminded today, returning whether the claim won and
// the previous stamp for rollback.
type BrideStore interface {
	Get(ctx context.Context, brideID string) (models.Bride, error)
	ClaimReminder(ctx context.Context, brideID string, now time.Time) (bool, *time.Time, error)
	ReleaseReminder(ctx context.Context, brideID string, prev *time.Time) error
}

// AppointmentSource supplies the appointments the sweep scans.
type AppointmentSource interface {
	List(ctx context.Context) ([]models.Appointment, error)
	ListByBride(ctx context.Context, brideID string) ([]models.Appointment, error)
}

// ErrNotFound is returned by BrideStore.Get when the bride record is missing.
var ErrNotFound = fmt.Errorf("bride not found")

type Sweeper struct {
	Brides BrideStore
	Appts  AppointmentSource
	Mail   mailer.Sender
	Now    func() time.Time
}

// Run executes one sweep. A failure for one bride never aborts the rest;
// partial completion is expected. Returns the number of emails sent.
func (s *Sweeper) Run(ctx context.Context) (int, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	all, err := s.Appts.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("load appointments: %w", err)
	}

	due := SelectDue(all, now)
	sent := 0

	for _, brideID := range BrideIDs(due) {
		bride, err := s.Brides.Get(ctx, brideID)
		if err == ErrNotFound {
			log.Printf("Sweep: bride %s not found, skipping", brideID)
			continue
		}
		if err != nil {
			log.Printf("Sweep: load bride %s: %v", brideID, err)
			continue
		}

		claimed, prev, err := s.Brides.ClaimReminder(ctx, brideID, now)
		if err != nil {
			log.Printf("Sweep: claim for bride %s: %v", brideID, err)
			continue
		}
		if !claimed {
			// Already reminded today
			continue
		}

		release := func() {
			if err := s.Brides.ReleaseReminder(ctx, brideID, prev); err != nil {
				log.Printf("Sweep: release claim for bride %s: %v", brideID, err)
			}
		}

		brideAppts, err := s.Appts.ListByBride(ctx, brideID)
		if err != nil {
			log.Printf("Sweep: load appointments for bride %s: %v", brideID, err)
			release()
			continue
		}
		brideDue := SelectDue(brideAppts, now)
		if len(brideDue) == 0 {
			release()
			continue
		}

		err = s.Mail.Send(mailer.TemplateReminder, bride.Email, map[string]string{
			"Name":         bride.FullName,
			"Appointments": ComposeLines(brideDue),
		})
		if err != nil {
			log.Printf("Sweep: send to bride %s (%s): %v", brideID, bride.Email, err)
			release()
			continue
		}
		sent++
	}

	return sent, nil
}
