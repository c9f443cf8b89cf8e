package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"carbooking/internal/domain/models"
	"carbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders booking confirmations as PDF.
type TicketService struct {
	Trips    TripService
	Location *time.Location
}

// Render returns the PDF bytes and a suggested file name for trip id.
func (s TicketService) Render(ctx context.Context, id int64) ([]byte, string, error) {
	trip, err := s.Trips.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(ctx, s.Trips.Log, "tickets", "render", "ticket generated", "trip_id", id)

	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return buildTicketPDF(trip, loc)
}

func buildTicketPDF(t models.Trip, loc *time.Location) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking No  : #%d", t.ID),
		fmt.Sprintf("Name        : %s", utils.SafeText(t.Name, "-")),
		fmt.Sprintf("Phone       : %s", utils.SafeText(t.Phone, "-")),
		fmt.Sprintf("Destination : %s", utils.SafeText(t.Destination, "-")),
		fmt.Sprintf("Dates       : %s - %s", utils.SafeText(t.StartDate, "-"), utils.SafeText(t.EndDate, "-")),
		fmt.Sprintf("Status      : %s", t.Status),
		fmt.Sprintf("Booked at   : %s", t.CreatedAt.In(loc).Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if t.Status == models.TripCancelled {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 8, "THIS TRIP HAS BEEN CANCELLED")
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("TRIP_%d_%s.pdf", t.ID, utils.FilenamePart(t.Name))
	return buf.Bytes(), filename, nil
}
