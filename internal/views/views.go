// Package views maps domain entities to their JSON shapes.
// List shapes reference related rows by id; detail shapes nest them.
package views

import (
	"strings"

	"github.com/Domenick1991/airportservice/internal/domain"
)

type Airport struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

func AirportView(a domain.Airport) Airport {
	return Airport{ID: a.ID, Name: a.Name, ClosestBigCity: a.ClosestBigCity}
}

type RouteList struct {
	ID          int64 `json:"id"`
	Source      int64 `json:"source"`
	Destination int64 `json:"destination"`
	Distance    int   `json:"distance"`
}

type RouteDetail struct {
	ID          int64    `json:"id"`
	Source      *Airport `json:"source"`
	Destination *Airport `json:"destination"`
	Distance    int      `json:"distance"`
}

func RouteListView(r domain.Route) RouteList {
	return RouteList{ID: r.ID, Source: r.SourceID, Destination: r.DestinationID, Distance: r.Distance}
}

func RouteDetailView(r domain.Route) RouteDetail {
	return RouteDetail{
		ID:          r.ID,
		Source:      airportRef(r.Source),
		Destination: airportRef(r.Destination),
		Distance:    r.Distance,
	}
}

type AirplaneType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func AirplaneTypeView(t domain.AirplaneType) AirplaneType {
	return AirplaneType{ID: t.ID, Name: t.Name}
}

type AirplaneList struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType int64  `json:"airplane_type"`
}

type AirplaneDetail struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Rows         int           `json:"rows"`
	SeatsInRow   int           `json:"seats_in_row"`
	AirplaneType *AirplaneType `json:"airplane_type"`
}

func AirplaneListView(a domain.Airplane) AirplaneList {
	return AirplaneList{ID: a.ID, Name: a.Name, Rows: a.Rows, SeatsInRow: a.SeatsInRow, AirplaneType: a.AirplaneTypeID}
}

func AirplaneDetailView(a domain.Airplane) AirplaneDetail {
	d := AirplaneDetail{ID: a.ID, Name: a.Name, Rows: a.Rows, SeatsInRow: a.SeatsInRow}
	if a.AirplaneType != nil {
		t := AirplaneTypeView(*a.AirplaneType)
		d.AirplaneType = &t
	}
	return d
}

type FlightList struct {
	ID            int64           `json:"id"`
	Route         int64           `json:"route"`
	Airplane      int64           `json:"airplane"`
	DepartureTime domain.DateTime `json:"departure_time"`
	ArrivalTime   domain.DateTime `json:"arrival_time"`
}

type FlightDetail struct {
	ID            int64           `json:"id"`
	Route         *RouteDetail    `json:"route"`
	Airplane      *AirplaneDetail `json:"airplane"`
	DepartureTime domain.DateTime `json:"departure_time"`
	ArrivalTime   domain.DateTime `json:"arrival_time"`
}

func FlightListView(f domain.Flight) FlightList {
	return FlightList{
		ID:            f.ID,
		Route:         f.RouteID,
		Airplane:      f.AirplaneID,
		DepartureTime: domain.DateTime{Time: f.DepartureTime},
		ArrivalTime:   domain.DateTime{Time: f.ArrivalTime},
	}
}

func FlightDetailView(f domain.Flight) FlightDetail {
	d := FlightDetail{
		ID:            f.ID,
		DepartureTime: domain.DateTime{Time: f.DepartureTime},
		ArrivalTime:   domain.DateTime{Time: f.ArrivalTime},
	}
	if f.Route != nil {
		r := RouteDetailView(*f.Route)
		d.Route = &r
	}
	if f.Airplane != nil {
		a := AirplaneDetailView(*f.Airplane)
		d.Airplane = &a
	}
	return d
}

type CrewList struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Flights   []int64 `json:"flight"`
	Picture   *string `json:"picture_member"`
}

type CrewDetail struct {
	ID        int64          `json:"id"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Flights   []FlightDetail `json:"flight"`
	Picture   *string        `json:"picture_member"`
}

// CrewListView renders the picture under mediaURL, or null when none is stored.
func CrewListView(c domain.Crew, mediaURL string) CrewList {
	ids := c.FlightIDs
	if ids == nil {
		ids = []int64{}
	}
	return CrewList{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Flights:   ids,
		Picture:   PictureURL(mediaURL, c.Picture),
	}
}

func CrewDetailView(c domain.Crew, mediaURL string) CrewDetail {
	flights := make([]FlightDetail, 0, len(c.Flights))
	for _, f := range c.Flights {
		flights = append(flights, FlightDetailView(f))
	}
	return CrewDetail{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Flights:   flights,
		Picture:   PictureURL(mediaURL, c.Picture),
	}
}

func PictureURL(mediaURL, stored string) *string {
	if stored == "" {
		return nil
	}
	if !strings.HasSuffix(mediaURL, "/") {
		mediaURL += "/"
	}
	if !strings.HasPrefix(mediaURL, "/") && !strings.Contains(mediaURL, "://") {
		mediaURL = "/" + mediaURL
	}
	u := mediaURL + strings.TrimPrefix(stored, "/")
	return &u
}

type Order struct {
	ID        int64           `json:"id"`
	CreatedAt domain.DateTime `json:"created_at"`
	Customer  string          `json:"customer"`
}

func OrderView(o domain.Order) Order {
	return Order{ID: o.ID, CreatedAt: domain.DateTime{Time: o.CreatedAt}, Customer: o.CustomerEmail}
}

// TicketOrder is the order as embedded in a ticket detail.
type TicketOrder struct {
	CreatedAt domain.DateTime `json:"created_at"`
	Customer  string          `json:"customer"`
}

func TicketOrderView(o domain.Order) TicketOrder {
	return TicketOrder{CreatedAt: domain.DateTime{Time: o.CreatedAt}, Customer: o.CustomerEmail}
}

type TicketList struct {
	ID     int64 `json:"id"`
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
	Flight int64 `json:"flight"`
	Order  int64 `json:"order"`
}

type TicketDetail struct {
	ID     int64         `json:"id"`
	Row    int           `json:"row"`
	Seat   int           `json:"seat"`
	Flight *FlightDetail `json:"flight"`
	Order  *TicketOrder  `json:"order"`
}

func TicketListView(t domain.Ticket) TicketList {
	return TicketList{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: t.FlightID, Order: t.OrderID}
}

func TicketDetailView(t domain.Ticket) TicketDetail {
	d := TicketDetail{ID: t.ID, Row: t.Row, Seat: t.Seat}
	if t.Flight != nil {
		f := FlightDetailView(*t.Flight)
		d.Flight = &f
	}
	if t.Order != nil {
		o := TicketOrderView(*t.Order)
		d.Order = &o
	}
	return d
}

// Many maps a slice through a view function, never returning nil.
func Many[E any, V any](items []E, view func(E) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, view(item))
	}
	return out
}

func airportRef(a *domain.Airport) *Airport {
	if a == nil {
		return nil
	}
	v := AirportView(*a)
	return &v
}
