// Package reports renders the salon's printable PDFs: the bride intake form,
// the monthly appointment summary, and the staff hours report.
package reports

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Roei786/Bridal-salon-sub000/appointments"
	"github.com/Roei786/Bridal-salon-sub000/dates"
	"github.com/Roei786/Bridal-salon-sub000/db"
	"github.com/Roei786/Bridal-salon-sub000/models"
	"github.com/Roei786/Bridal-salon-sub000/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func writePDF(w http.ResponseWriter, pdf *gofpdf.Fpdf, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename=%q`, filename))
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Failed to render PDF", http.StatusInternalServerError)
	}
}

// BrideFormPDF renders the intake/measurement form for one bride, with a QR
// code pointing back at the bride record.
func BrideFormPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var bride models.Bride
	err := db.BridesCollection.FindOne(r.Context(), bson.M{"brideId": id}).Decode(&bride)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Bride not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load bride")
		return
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	qrPNG, err := qrcode.Encode(fmt.Sprintf("%s/api/brides/%s", baseURL, bride.BrideID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Bridal Salon - Client Form")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Name: %s", bride.FullName))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", bride.Email))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Phone: %s", bride.Phone))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Wedding date: %s", bride.WeddingDate))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Assigned staff: %s", bride.AssignedStaff))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Measurements")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	for _, label := range []string{"Bust", "Waist", "Hips", "Shoulder to floor", "Sleeve", "Notes"} {
		pdf.Cell(50, 8, label+":")
		pdf.CellFormat(120, 8, "", "B", 0, "", false, 0, "")
		pdf.Ln(10)
	}

	// QR code bottom-right
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("bride-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("bride-qr", 160, 240, 35, 35, false, opts, 0, "")

	writePDF(w, pdf, fmt.Sprintf("bride-form-%s.pdf", bride.BrideID))
}

// MonthlyAppointmentsPDF lists one month's appointments in date order.
func MonthlyAppointmentsPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	year, err := strconv.Atoi(ps.ByName("year"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid year")
		return
	}
	monthNum, err := strconv.Atoi(ps.ByName("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid month")
		return
	}

	first := time.Date(year, time.Month(monthNum), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	appts, err := appointments.ListByDateRange(r.Context(),
		first.Format(dates.DateOnlyLayout)+" 00:00",
		last.Format(dates.DateOnlyLayout)+" 23:59")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load appointments")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Appointments - %s %d", first.Month(), year))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(45, 8, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(45, 8, "Bride", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 8, "Type", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Status", "1", 1, "", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, a := range appts {
		name := brideName(r.Context(), a.BrideID)
		pdf.CellFormat(45, 8, a.Date, "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 8, name, "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 8, models.ApptTypeLabel(a.Type), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, a.Status, "1", 1, "", false, 0, "")
	}
	if len(appts) == 0 {
		pdf.Cell(0, 10, "No appointments this month.")
	}

	writePDF(w, pdf, fmt.Sprintf("appointments-%d-%02d.pdf", year, monthNum))
}

// StaffHoursPDF summarizes one staff member's closed shifts.
func StaffHoursPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("userid")

	opts := options.Find().SetSort(bson.D{{Key: "clockIn", Value: 1}})
	cur, err := db.ShiftsCollection.Find(r.Context(), bson.M{"userId": userID, "clockOut": bson.M{"$ne": nil}}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load shifts")
		return
	}
	defer cur.Close(r.Context())

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Staff Hours Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Staff: %s", userID))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(55, 8, "Clock in", "1", 0, "", false, 0, "")
	pdf.CellFormat(55, 8, "Clock out", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Hours", "1", 1, "", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	total := 0.0
	for cur.Next(r.Context()) {
		var s models.Shift
		if err := cur.Decode(&s); err != nil {
			continue
		}
		out := ""
		if s.ClockOut != nil {
			out = s.ClockOut.Format(dates.StoredLayout)
		}
		pdf.CellFormat(55, 8, s.ClockIn.Format(dates.StoredLayout), "1", 0, "", false, 0, "")
		pdf.CellFormat(55, 8, out, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", s.DurationHours), "1", 1, "", false, 0, "")
		total += s.DurationHours
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(110, 8, "Total", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", total), "1", 1, "", false, 0, "")

	writePDF(w, pdf, fmt.Sprintf("hours-%s.pdf", userID))
}

func brideName(ctx context.Context, brideID string) string {
	var b models.Bride
	if err := db.BridesCollection.FindOne(ctx, bson.M{"brideId": brideID}).Decode(&b); err != nil {
		return brideID
	}
	return b.FullName
}
