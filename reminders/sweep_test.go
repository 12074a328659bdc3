package reminders

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/dates"
	"github.com/Roei786/Bridal-salon-sub000/models"
)

type fakeBrideStore struct {
	brides map[string]*models.Bride
}

func (f *fakeBrideStore) Get(_ context.Context, id string) (models.Bride, error) {
	b, ok := f.brides[id]
	if !ok {
		return models.Bride{}, ErrNotFound
	}
	return *b, nil
}

func (f *fakeBrideStore) ClaimReminder(_ context.Context, id string, now time.Time) (bool, *time.Time, error) {
	b, ok := f.brides[id]
	if !ok {
		return false, nil, ErrNotFound
	}
	prev := b.LastReminderSent
	if prev != nil && !prev.Before(dates.StartOfDay(now)) {
		return false, prev, nil
	}
	stamp := now
	b.LastReminderSent = &stamp
	return true, prev, nil
}

func (f *fakeBrideStore) ReleaseReminder(_ context.Context, id string, prev *time.Time) error {
	if b, ok := f.brides[id]; ok {
		b.LastReminderSent = prev
	}
	return nil
}

type fakeApptSource struct {
	appts []models.Appointment
}

// sortedByDate mirrors the store's ascending date sort; the stored string
// layout sorts lexicographically in chronological order.
func sortedByDate(appts []models.Appointment) []models.Appointment {
	out := append([]models.Appointment(nil), appts...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func (f *fakeApptSource) List(context.Context) ([]models.Appointment, error) {
	return sortedByDate(f.appts), nil
}

func (f *fakeApptSource) ListByBride(_ context.Context, brideID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.BrideID == brideID {
			out = append(out, a)
		}
	}
	return sortedByDate(out), nil
}

type sentMail struct {
	template string
	to       string
	params   map[string]string
}

type fakeSender struct {
	sent    []sentMail
	failFor map[string]bool
}

func (f *fakeSender) Send(templateID, to string, params map[string]string) error {
	if f.failFor[to] {
		return fmt.Errorf("smtp refused %s", to)
	}
	f.sent = append(f.sent, sentMail{templateID, to, params})
	return nil
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

func apptAt(id, brideID string, daysAhead int) models.Appointment {
	return models.Appointment{
		AppointmentID: id,
		BrideID:       brideID,
		Type:          models.ApptFirstFitting,
		Date:          dates.FormatStored(testNow.AddDate(0, 0, daysAhead)),
	}
}

func newSweeper(brides *fakeBrideStore, appts *fakeApptSource, mail *fakeSender) *Sweeper {
	return &Sweeper{
		Brides: brides,
		Appts:  appts,
		Mail:   mail,
		Now:    func() time.Time { return testNow },
	}
}

func TestInWindowBoundaries(t *testing.T) {
	cases := map[int]bool{
		-1: false,
		0:  true,
		1:  true,
		2:  false,
		4:  false,
		5:  true,
		8:  true,
		9:  false,
		10: false,
	}
	for offset, want := range cases {
		if got := InWindow(offset); got != want {
			t.Errorf("InWindow(%d) = %v, want %v", offset, got, want)
		}
	}
}

func TestSelectDueFiltersByOffset(t *testing.T) {
	appts := []models.Appointment{
		apptAt("past", "b1", -1),
		apptAt("today", "b1", 0),
		apptAt("tomorrow", "b2", 1),
		apptAt("offset2", "b3", 2),
		apptAt("offset5", "b4", 5),
		apptAt("offset9", "b5", 9),
	}
	due := SelectDue(appts, testNow)
	if len(due) != 3 {
		t.Fatalf("expected 3 due, got %d: %+v", len(due), due)
	}
	for i, want := range []string{"today", "tomorrow", "offset5"} {
		if due[i].AppointmentID != want {
			t.Errorf("due[%d] = %s, want %s", i, due[i].AppointmentID, want)
		}
	}
}

func TestSweepSingleEmailListsBothAppointments(t *testing.T) {
	brides := &fakeBrideStore{brides: map[string]*models.Bride{
		"b1": {BrideID: "b1", FullName: "Dana", Email: "dana@example.com"},
	}}
	week := apptAt("a2", "b1", 6)
	week.Type = models.ApptFinalFitting
	appts := &fakeApptSource{appts: []models.Appointment{week, apptAt("a1", "b1", 1)}}
	mail := &fakeSender{}

	sent, err := newSweeper(brides, appts, mail).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 1 || len(mail.sent) != 1 {
		t.Fatalf("expected exactly one email, got %d", len(mail.sent))
	}

	m := mail.sent[0]
	if m.to != "dana@example.com" {
		t.Errorf("sent to %s", m.to)
	}
	lines := m.params["Appointments"]
	first := strings.Index(lines, "First Fitting")
	second := strings.Index(lines, "Final Fitting")
	if first == -1 || second == -1 {
		t.Fatalf("missing appointment lines: %q", lines)
	}
	if first > second {
		t.Errorf("appointments not in ascending date order: %q", lines)
	}
	if !strings.HasPrefix(lines, "1. ") || !strings.Contains(lines, "\n2. ") {
		t.Errorf("lines not numbered: %q", lines)
	}

	if brides.brides["b1"].LastReminderSent == nil || !brides.brides["b1"].LastReminderSent.Equal(testNow) {
		t.Error("lastReminderSent not stamped to now")
	}
}

func TestSweepIdempotentSameDay(t *testing.T) {
	brides := &fakeBrideStore{brides: map[string]*models.Bride{
		"b1": {BrideID: "b1", FullName: "Dana", Email: "dana@example.com"},
	}}
	appts := &fakeApptSource{appts: []models.Appointment{apptAt("a1", "b1", 1)}}
	mail := &fakeSender{}
	s := newSweeper(brides, appts, mail)

	if sent, _ := s.Run(context.Background()); sent != 1 {
		t.Fatalf("first run: expected 1 email, got %d", sent)
	}
	if sent, _ := s.Run(context.Background()); sent != 0 {
		t.Fatalf("second run same day: expected 0 emails, got %d", sent)
	}
	if len(mail.sent) != 1 {
		t.Fatalf("expected 1 email total, got %d", len(mail.sent))
	}
}

func TestSweepYesterdayStampDoesNotBlock(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	brides := &fakeBrideStore{brides: map[string]*models.Bride{
		"b1": {BrideID: "b1", Email: "dana@example.com", LastReminderSent: &yesterday},
	}}
	appts := &fakeApptSource{appts: []models.Appointment{apptAt("a1", "b1", 1)}}
	mail := &fakeSender{}

	if sent, _ := newSweeper(brides, appts, mail).Run(context.Background()); sent != 1 {
		t.Fatalf("expected 1 email, got %d", sent)
	}
}

func TestSweepSendFailureContinues(t *testing.T) {
	brides := &fakeBrideStore{brides: map[string]*models.Bride{
		"b1": {BrideID: "b1", Email: "broken@example.com"},
		"b2": {BrideID: "b2", Email: "ok@example.com"},
	}}
	appts := &fakeApptSource{appts: []models.Appointment{
		apptAt("a1", "b1", 1),
		apptAt("a2", "b2", 1),
	}}
	mail := &fakeSender{failFor: map[string]bool{"broken@example.com": true}}

	sent, err := newSweeper(brides, appts, mail).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 1 || len(mail.sent) != 1 || mail.sent[0].to != "ok@example.com" {
		t.Fatalf("expected the second bride to still get mail: %+v", mail.sent)
	}
	// Failed send must release the claim so a later run can retry today
	if brides.brides["b1"].LastReminderSent != nil {
		t.Error("failed send left the reminder stamp in place")
	}
	if brides.brides["b2"].LastReminderSent == nil {
		t.Error("successful send did not stamp")
	}
}

func TestSweepMissingBrideSkipped(t *testing.T) {
	brides := &fakeBrideStore{brides: map[string]*models.Bride{}}
	appts := &fakeApptSource{appts: []models.Appointment{apptAt("a1", "ghost", 1)}}
	mail := &fakeSender{}

	sent, err := newSweeper(brides, appts, mail).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 0 || len(mail.sent) != 0 {
		t.Fatal("expected no emails for missing bride")
	}
}
