package reservation

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"frontdesk/internal/availability"

	"github.com/phpdave11/gofpdf"
)

// RegistrationCard renders the A4 card the guest signs at check-in.
// Returns the PDF bytes and a download filename.
func (s *Service) RegistrationCard(ctx context.Context, id string) ([]byte, string, error) {
	d, err := s.Describe(ctx, id)
	if err != nil {
		return nil, "", err
	}
	st, err := s.settings.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, st.HotelName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	if st.Address != "" {
		pdf.Cell(0, 6, st.Address)
		pdf.Ln(6)
	}
	if st.Phone != "" {
		pdf.Cell(0, 6, st.Phone)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Guest Registration Card")
	pdf.Ln(12)

	rows := [][2]string{
		{"Reservation", d.ID},
		{"Guest", d.CustomerName},
		{"Room type", d.RoomTypeName},
		{"Room", d.RoomNumber},
		{"Check-in", d.CheckInDate.Format(availability.DateLayout) + " from " + st.CheckInTime},
		{"Check-out", d.CheckOutDate.Format(availability.DateLayout) + " until " + st.CheckOutTime},
		{"Nights", strconv.Itoa(d.Nights())},
		{"Guests", strconv.Itoa(d.Guests)},
		{"Total", fmt.Sprintf("%.2f", d.TotalAmount)},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 7, row[0], "", 0, "", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, row[1], "", 1, "", false, 0, "")
	}

	if d.SpecialRequests != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, "Special requests")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, d.SpecialRequests, "", "", false)
	}

	pdf.Ln(16)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(50, 8, "Guest signature:")
	pdf.CellFormat(90, 8, "", "B", 1, "", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("registration-%s.pdf", d.ID)
	return buf.Bytes(), filename, nil
}
