// Package ticket renders printable PDF tickets for bookings.
package ticket

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/metinatakli/seat-booking/internal/domain"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageName = "qr"

// Render returns a single page A4 ticket whose QR code encodes the booking
// reference.
func Render(b *domain.Booking) ([]byte, error) {
	qr, err := qrcode.Encode(b.Reference.String(), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(fmt.Sprintf("Ticket %s", b.Reference), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "MOVIE TICKET")
	pdf.Ln(18)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 55, "F")

	pdf.SetXY(20, yStart+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr(pdf, b.MovieTitle))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		fmt.Sprintf("Seat: %s", b.SeatNumber),
		fmt.Sprintf("Guest: %s", b.Username),
		fmt.Sprintf("Booked at: %s", b.BookingDate.UTC().Format("2006-01-02 15:04 MST")),
		fmt.Sprintf("Reference: %s", b.Reference),
	} {
		pdf.SetX(20)
		pdf.Cell(0, 8, tr(pdf, line))
		pdf.Ln(7)
	}

	pdf.RegisterImageOptionsReader(qrImageName, gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qr))
	pdf.ImageOptions(qrImageName, 145, yStart+5, 45, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(yStart + 63)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Show this QR code at the entrance.")

	var buf bytes.Buffer
	err = pdf.Output(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// tr maps UTF-8 text onto the code page of the core fonts.
func tr(pdf *gofpdf.Fpdf, s string) string {
	return pdf.UnicodeTranslatorFromDescriptor("")(s)
}
