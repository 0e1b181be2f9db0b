package eticket

import (
	"bytes"
	"testing"
	"time"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ticket() domain.Ticket {
	jfk := &domain.Airport{ID: 1, Name: "JFK", ClosestBigCity: "New York"}
	lax := &domain.Airport{ID: 2, Name: "LAX", ClosestBigCity: "Los Angeles"}
	flight := &domain.Flight{
		ID:            6,
		DepartureTime: time.Date(2024, 9, 30, 19, 23, 45, 0, time.UTC),
		ArrivalTime:   time.Date(2024, 9, 30, 23, 0, 0, 0, time.UTC),
		Route:         &domain.Route{ID: 3, Distance: 4000, Source: jfk, Destination: lax},
		Airplane:      &domain.Airplane{ID: 5, Name: "Airplane 1"},
	}
	order := &domain.Order{ID: 7, CreatedAt: time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC), CustomerEmail: "testuser@example.com"}
	return domain.Ticket{ID: 8, Row: 4, Seat: 2, FlightID: 6, OrderID: 7, Flight: flight, Order: order}
}

func TestRender(t *testing.T) {
	data, err := Render(ticket())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRender_RequiresDetail(t *testing.T) {
	_, err := Render(domain.Ticket{ID: 1})
	assert.Error(t, err)
}

func TestLines(t *testing.T) {
	out := lines(ticket())

	assert.Contains(t, out, "Order      : 2024-09-01 08:00:00 - testuser@example.com")
	assert.Contains(t, out, "Route      : JFK - LAX Los Angeles (4000 km)")
	assert.Contains(t, out, "Seat       : row 4, seat 2")
}
