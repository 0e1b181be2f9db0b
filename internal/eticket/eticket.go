package eticket

import (
	"bytes"
	"fmt"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/phpdave11/gofpdf"
)

// Render lays out a ticket loaded with its flight and order detail.
func Render(t domain.Ticket) ([]byte, error) {
	if t.Flight == nil || t.Order == nil {
		return nil, fmt.Errorf("ticket %d is missing flight or order detail", t.ID)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("E-Ticket #%d", t.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range lines(t) {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "One passenger per ticket. Please arrive at the gate before departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket %d: %w", t.ID, err)
	}
	return buf.Bytes(), nil
}

func lines(t domain.Ticket) []string {
	f := t.Flight
	out := []string{
		fmt.Sprintf("Ticket     : #%d", t.ID),
		fmt.Sprintf("Order      : %s", t.Order),
		fmt.Sprintf("Flight     : #%d", f.ID),
	}
	if f.Route != nil {
		out = append(out, fmt.Sprintf("Route      : %s (%d km)", f.Route, f.Route.Distance))
	}
	if f.Airplane != nil {
		out = append(out, fmt.Sprintf("Airplane   : %s", f.Airplane.Name))
	}
	out = append(out,
		fmt.Sprintf("Departure  : %s", f.DepartureTime.UTC().Format(domain.DateTimeLayout)),
		fmt.Sprintf("Arrival    : %s", f.ArrivalTime.UTC().Format(domain.DateTimeLayout)),
		fmt.Sprintf("Seat       : row %d, seat %d", t.Row, t.Seat),
	)
	return out
}
