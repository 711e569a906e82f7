package service

import (
	"bytes"
	"fmt"
	bookingModel "roomops/internal/domains/booking/model"
	"roomops/internal/domains/invoice/model"
	"roomops/shared/constant"
	"roomops/shared/timezone"

	"github.com/phpdave11/gofpdf"
)

const (
	pageWidthMM   = 190.0
	amountWidthMM = 45.0
)

// Render draws the invoice as an A4 PDF.
func Render(invoice model.Invoice, booking bookingModel.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+invoice.ID, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Invoice no : "+invoice.ID)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Issued     : "+timezone.Format(invoice.CreatedAt, constant.DateFormat))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Booking    : "+invoice.BookingID)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Guest : %s", fallback(booking.GuestName, "-")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Room  : %s", fallback(booking.RoomNumber, "-")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Stay  : %s - %s", timezone.Day(booking.CheckIn), timezone.Day(booking.CheckOut)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(pageWidthMM-amountWidthMM, 7, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(amountWidthMM, 7, "Amount ("+invoice.Currency+")", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)

	for _, line := range invoice.Lines {
		pdf.CellFormat(pageWidthMM-amountWidthMM, 7, line.Description, "", 0, "L", false, 0, "")
		pdf.CellFormat(amountWidthMM, 7, line.Amount.StringFixed(moneyPlaces), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(pageWidthMM-amountWidthMM, 9, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(amountWidthMM, 9, invoice.TotalAmount.StringFixed(moneyPlaces), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	if !invoice.RoundOff.IsZero() {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "The round off line is a fixed billing adjustment.", "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// FileName is the document name used for downloads and the archive object key.
func FileName(invoice model.Invoice) string {
	return fmt.Sprintf("invoice-%s.pdf", invoice.ID)
}

func fallback(value, def string) string {
	if value == constant.Empty {
		return def
	}

	return value
}
