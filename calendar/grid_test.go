package calendar

import (
	"testing"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/models"
)

func TestGridShape(t *testing.T) {
	cases := []struct {
		year       int
		month      time.Month
		wantBlanks int
		wantDays   int
	}{
		{2025, time.June, 0, 30},     // June 1 2025 is a Sunday
		{2025, time.July, 2, 31},     // July 1 2025 is a Tuesday
		{2024, time.February, 4, 29}, // leap year, Feb 1 2024 is a Thursday
		{2025, time.February, 6, 28}, // Feb 1 2025 is a Saturday
	}

	for _, tc := range cases {
		grid := BuildMonthGrid(tc.year, tc.month, nil, time.Now())

		blanks := 0
		for _, c := range grid.Cells {
			if c.Blank {
				blanks++
			}
		}
		if blanks != tc.wantBlanks {
			t.Errorf("%v %d: expected %d leading blanks, got %d", tc.month, tc.year, tc.wantBlanks, blanks)
		}
		if len(grid.Cells) != tc.wantBlanks+tc.wantDays {
			t.Errorf("%v %d: expected %d cells, got %d", tc.month, tc.year, tc.wantBlanks+tc.wantDays, len(grid.Cells))
		}
		wd := int(time.Date(tc.year, tc.month, 1, 0, 0, 0, 0, time.Local).Weekday())
		if blanks != wd {
			t.Errorf("%v %d: blanks %d != weekday index %d of day 1", tc.month, tc.year, blanks, wd)
		}
	}
}

func TestGridBucketsByDay(t *testing.T) {
	appts := []models.Appointment{
		{AppointmentID: "1", BrideID: "b1", Date: "2025-06-15 09:00"},
		{AppointmentID: "2", BrideID: "b2", Date: "2025-06-15 14:30"},
		{AppointmentID: "3", BrideID: "b1", Date: "2025-06-20 11:00"},
		{AppointmentID: "4", BrideID: "b3", Date: "2025-07-01 10:00"}, // other month
		{AppointmentID: "5", BrideID: "b4", Date: "garbage"},         // skipped
	}

	grid := BuildMonthGrid(2025, time.June, appts, time.Now())

	find := func(day int) DayCell {
		for _, c := range grid.Cells {
			if !c.Blank && c.Day == day {
				return c
			}
		}
		t.Fatalf("day %d not found", day)
		return DayCell{}
	}

	d15 := find(15)
	if len(d15.Appointments) != 2 {
		t.Fatalf("expected 2 appointments on the 15th, got %d", len(d15.Appointments))
	}
	if d15.Appointments[0].AppointmentID != "1" || d15.Appointments[1].AppointmentID != "2" {
		t.Errorf("day bucket lost store order: %+v", d15.Appointments)
	}
	if len(find(20).Appointments) != 1 {
		t.Error("expected 1 appointment on the 20th")
	}
	if len(find(1).Appointments) != 0 {
		t.Error("expected no appointments on the 1st")
	}

	total := 0
	for _, c := range grid.Cells {
		total += len(c.Appointments)
	}
	if total != 3 {
		t.Errorf("expected 3 bucketed appointments in June, got %d", total)
	}
}

func TestGridCurrentDay(t *testing.T) {
	today := time.Date(2025, 6, 15, 16, 45, 0, 0, time.Local)
	grid := BuildMonthGrid(2025, time.June, nil, today)

	for _, c := range grid.Cells {
		if c.Blank {
			continue
		}
		if c.Day == 15 && !c.Current {
			t.Error("expected day 15 to be current")
		}
		if c.Day != 15 && c.Current {
			t.Errorf("day %d wrongly marked current", c.Day)
		}
	}
}
