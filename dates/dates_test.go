package dates

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseStoredDateTime(t *testing.T) {
	got, err := ParseStored("2025-06-15 10:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseStoredDateOnly(t *testing.T) {
	got, err := ParseStored("2025-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseStoredRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "  ", "next tuesday", "15/06/2025"} {
		if _, err := ParseStored(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	orig := time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)
	got, err := ParseStored(FormatStored(orig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(orig) {
		t.Fatalf("round trip changed value: %v != %v", got, orig)
	}
}

func TestNormalize(t *testing.T) {
	ref := time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

	cases := []struct {
		name string
		in   any
		want time.Time
		ok   bool
	}{
		{"time.Time", ref, ref, true},
		{"primitive.DateTime", primitive.NewDateTimeFromTime(ref), ref, true},
		{"stored string", "2025-06-15 10:30", ref, true},
		{"date only", "2025-06-15", time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), true},
		{"int", 42, time.Time{}, false},
		{"nil pointer", (*time.Time)(nil), time.Time{}, false},
	}
	for _, tc := range cases {
		got, err := Normalize(tc.in)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("%s: expected error", tc.name)
			}
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestDayOffset(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	cases := []struct {
		hoursAhead float64
		want       int
	}{
		{0, 0},
		{23, 0},
		{24, 1},
		{47, 1},
		{48, 2},
		{-1, -1},
		{-25, -2},
		{24 * 5, 5},
		{24 * 9, 9},
	}
	for _, tc := range cases {
		got := DayOffset(now, now.Add(time.Duration(tc.hoursAhead*float64(time.Hour))))
		if got != tc.want {
			t.Errorf("offset for %+.0fh: expected %d, got %d", tc.hoursAhead, tc.want, got)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 6, 15, 0, 1, 0, 0, time.Local)
	b := time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local)
	c := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)
	if !SameDay(a, b) {
		t.Error("expected same day for a, b")
	}
	if SameDay(b, c) {
		t.Error("expected different day for b, c")
	}
}
