package shifts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/globals"
	"github.com/Roei786/Bridal-salon-sub000/models"
)

type fakeStore struct {
	open   map[string]models.Shift
	closed []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{open: map[string]models.Shift{}}
}

func (f *fakeStore) Start(_ context.Context, s models.Shift) error {
	if _, ok := f.open[s.UserID]; ok {
		return ErrShiftOpen
	}
	f.open[s.UserID] = s
	return nil
}

func (f *fakeStore) FindOpen(_ context.Context, userID string) (models.Shift, error) {
	s, ok := f.open[userID]
	if !ok {
		return models.Shift{}, ErrNoOpenShift
	}
	return s, nil
}

func (f *fakeStore) Close(_ context.Context, shiftID string, _ time.Time, _ float64) error {
	for uid, s := range f.open {
		if s.ShiftID == shiftID {
			delete(f.open, uid)
			f.closed = append(f.closed, shiftID)
			return nil
		}
	}
	return ErrNoOpenShift
}

func withStore(t *testing.T, s Store) {
	t.Helper()
	prev := store
	store = s
	t.Cleanup(func() { store = prev })
}

func clockRequest(userID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/shifts/clock-in", nil)
	return req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, userID))
}

func TestClockInOpensShift(t *testing.T) {
	fs := newFakeStore()
	withStore(t, fs)

	rec := httptest.NewRecorder()
	ClockIn(rec, clockRequest("u1"), nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	s, ok := fs.open["u1"]
	if !ok || !s.Open {
		t.Fatalf("expected an open shift for u1, got %+v", fs.open)
	}
}

func TestClockInRejectedWhileOpen(t *testing.T) {
	fs := newFakeStore()
	fs.open["u1"] = models.Shift{ShiftID: "s1", UserID: "u1", ClockIn: time.Now(), Open: true}
	withStore(t, fs)

	rec := httptest.NewRecorder()
	ClockIn(rec, clockRequest("u1"), nil)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var body struct {
		Error string       `json:"error"`
		Shift models.Shift `json:"shift"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Shift.ShiftID != "s1" {
		t.Errorf("expected the existing open shift in the response, got %+v", body)
	}
	if fs.open["u1"].ShiftID != "s1" {
		t.Error("rejected clock-in must not replace the open shift")
	}
}

func TestClockOutClosesOpenShift(t *testing.T) {
	fs := newFakeStore()
	fs.open["u1"] = models.Shift{ShiftID: "s1", UserID: "u1", ClockIn: time.Now().Add(-2 * time.Hour), Open: true}
	withStore(t, fs)

	rec := httptest.NewRecorder()
	ClockOut(rec, clockRequest("u1"), nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(fs.closed) != 1 || fs.closed[0] != "s1" {
		t.Fatalf("expected s1 closed, got %v", fs.closed)
	}
	var body struct {
		Shift models.Shift `json:"shift"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Shift.ClockOut == nil || body.Shift.Open {
		t.Errorf("expected a closed shift in the response, got %+v", body.Shift)
	}
	if body.Shift.DurationHours < 1.9 || body.Shift.DurationHours > 2.1 {
		t.Errorf("expected about 2 hours, got %.2f", body.Shift.DurationHours)
	}
}

func TestClockOutWithoutOpenShift(t *testing.T) {
	withStore(t, newFakeStore())

	rec := httptest.NewRecorder()
	ClockOut(rec, clockRequest("u1"), nil)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestDurationHours(t *testing.T) {
	cases := []struct {
		in, out string
		want    float64
	}{
		{"09:00", "17:30", 8.5},
		{"09:00", "09:00", 0},
		{"08:15", "12:00", 3.75},
		{"22:00", "23:30", 1.5},
	}
	for _, tc := range cases {
		day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
		parse := func(hm string) time.Time {
			tt, err := time.ParseInLocation("15:04", hm, time.Local)
			if err != nil {
				t.Fatalf("bad test input %q", hm)
			}
			return day.Add(time.Duration(tt.Hour())*time.Hour + time.Duration(tt.Minute())*time.Minute)
		}
		got := DurationHours(parse(tc.in), parse(tc.out))
		if got != tc.want {
			t.Errorf("%s-%s: expected %.2f hours, got %.2f", tc.in, tc.out, tc.want, got)
		}
	}
}

func TestDurationHoursCrossesMidnight(t *testing.T) {
	in := time.Date(2025, 6, 15, 22, 0, 0, 0, time.Local)
	out := time.Date(2025, 6, 16, 2, 0, 0, 0, time.Local)
	if got := DurationHours(in, out); got != 4 {
		t.Errorf("expected 4 hours, got %.2f", got)
	}
}
