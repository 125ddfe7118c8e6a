// Package receipt builds PDF receipts for completed appointments.
package receipt

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/smartque/smartque-api/internal/models"
)

// Build renders the receipt for a completed appointment.
func Build(ap models.Appointment, user models.User, reference string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(74, 68, 198)
	pdf.CellFormat(0, 10, "SmarTQue", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, "Appointment Receipt", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Appointment", "1", 1, "C", false, 0, "")
	addRow(pdf, "Receipt Ref", reference)
	addRow(pdf, "Appointment ID", fmt.Sprintf("%d", ap.ID))
	addRow(pdf, "Patient", user.Name)
	addRow(pdf, "Doctor", ap.DoctorName)
	addRow(pdf, "Department", ap.DepartmentName)
	addRow(pdf, "Date", ap.DateTime.Format("2006-01-02 15:04"))
	addRow(pdf, "Queue Number", ap.QueueNumber)

	pdf.CellFormat(0, 10, "Charges", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	addRow(pdf, "Consultation Fee", fmt.Sprintf("KES %.2f", ap.ConsultationFee))

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, "Thank you for using SmarTQue.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 8, label, "1", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, value, "1", 1, "L", false, 0, "")
}
