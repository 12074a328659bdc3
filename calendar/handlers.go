package calendar

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/appointments"
	"github.com/Roei786/Bridal-salon-sub000/dates"
	"github.com/Roei786/Bridal-salon-sub000/utils"

	"github.com/julienschmidt/httprouter"
)

// GetMonthGrid rebuilds the calendar grid for one month. The grid is fully
// recomputed on each request; only the month's appointments are fetched.
func GetMonthGrid(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	year, err := strconv.Atoi(ps.ByName("year"))
	if err != nil || year < 1970 || year > 2200 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid year")
		return
	}
	monthNum, err := strconv.Atoi(ps.ByName("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid month")
		return
	}
	month := time.Month(monthNum)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	start := fmt.Sprintf("%s 00:00", first.Format(dates.DateOnlyLayout))
	end := fmt.Sprintf("%s 23:59", last.Format(dates.DateOnlyLayout))

	appts, err := appointments.ListByDateRange(r.Context(), start, end)
	if err != nil {
		log.Printf("Calendar fetch error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load appointments")
		return
	}

	grid := BuildMonthGrid(year, month, appts, time.Now())
	utils.RespondWithJSON(w, http.StatusOK, grid)
}
