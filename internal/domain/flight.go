package domain

import (
	"fmt"
	"time"
)

// DateTimeLayout is the wire format of every timestamp the API renders or accepts.
const DateTimeLayout = "2006-01-02 15:04:05"

type Flight struct {
	ID            int64
	RouteID       int64
	AirplaneID    int64
	DepartureTime time.Time
	ArrivalTime   time.Time
	Route         *Route
	Airplane      *Airplane
}

func (f Flight) String() string {
	times := fmt.Sprintf("(%s - %s)", f.DepartureTime.UTC().Format(DateTimeLayout), f.ArrivalTime.UTC().Format(DateTimeLayout))
	if f.Route == nil || f.Route.Source == nil || f.Route.Destination == nil || f.Airplane == nil {
		return fmt.Sprintf("flight %d time %s", f.ID, times)
	}
	return fmt.Sprintf("%s - %s (%s) - %s time %s",
		f.Route.Source.Name, f.Route.Destination.Name, f.Route.Destination.ClosestBigCity, f.Airplane.Name, times)
}

// FlightInput accepts arrival before departure; see DESIGN.md.
type FlightInput struct {
	Route         *int64    `json:"route" validate:"required"`
	Airplane      *int64    `json:"airplane" validate:"required"`
	DepartureTime *DateTime `json:"departure_time" validate:"required"`
	ArrivalTime   *DateTime `json:"arrival_time" validate:"required"`
}

type Crew struct {
	ID        int64
	FirstName string
	LastName  string
	Picture   string
	FlightIDs []int64
	Flights   []Flight
}

func (c Crew) String() string { return c.FirstName + " " + c.LastName }

// CrewInput replaces the crew's flight set as a whole; a nil Flights means no flights.
type CrewInput struct {
	FirstName *string  `json:"first_name" validate:"required,max=255"`
	LastName  *string  `json:"last_name" validate:"required,max=255"`
	Flights   *[]int64 `json:"flight"`
}
