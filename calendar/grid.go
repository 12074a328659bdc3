package calendar

import (
	"log"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/dates"
	"github.com/Roei786/Bridal-salon-sub000/models"
)

// DayCell is one calendar cell. Blank cells pad the first week so day 1
// lands on its weekday column.
type DayCell struct {
	Day          int                  `json:"day"` // 0 for leading blanks
	Blank        bool                 `json:"blank"`
	Current      bool                 `json:"current"`
	Appointments []models.Appointment `json:"appointments,omitempty"`
}

type MonthGrid struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Cells []DayCell `json:"cells"`
}

// BuildMonthGrid lays out one month: leading blanks equal to the weekday
// index of day 1 (Sunday = 0), then one cell per day with that day's
// appointments bucketed in store order. Appointments with unparseable dates
// are logged and skipped.
func BuildMonthGrid(year int, month time.Month, appts []models.Appointment, today time.Time) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leadingBlanks := int(first.Weekday())

	grid := MonthGrid{
		Year:  year,
		Month: int(month),
		Cells: make([]DayCell, 0, leadingBlanks+daysInMonth),
	}
	for i := 0; i < leadingBlanks; i++ {
		grid.Cells = append(grid.Cells, DayCell{Blank: true})
	}

	// Bucket appointments by day, preserving the store's ascending order.
	byDay := make(map[int][]models.Appointment)
	for _, a := range appts {
		t, err := dates.Normalize(a.Date)
		if err != nil {
			log.Printf("Skipping appointment %s with bad date: %v", a.AppointmentID, err)
			continue
		}
		y, m, d := t.Date()
		if y != year || m != month {
			continue
		}
		byDay[d] = append(byDay[d], a)
	}

	for day := 1; day <= daysInMonth; day++ {
		cell := DayCell{
			Day:          day,
			Current:      dates.SameDay(time.Date(year, month, day, 0, 0, 0, 0, time.Local), today),
			Appointments: byDay[day],
		}
		grid.Cells = append(grid.Cells, cell)
	}
	return grid
}
