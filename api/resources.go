package api

import (
	"slices"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/middleware"
	"github.com/Domenick1991/airportservice/internal/service/resource"
	"github.com/Domenick1991/airportservice/internal/views"
	"github.com/gin-gonic/gin"
)

func NewAirportHandler(svc resource.UseCase[domain.Airport, domain.AirportInput]) *ResourceHandler[domain.Airport, domain.AirportInput] {
	return &ResourceHandler[domain.Airport, domain.AirportInput]{
		name:    "airport",
		service: svc,
		list:    anyView(views.AirportView),
		detail:  anyView(views.AirportView),
		toInput: func(a domain.Airport) domain.AirportInput {
			return domain.AirportInput{Name: &a.Name, ClosestBigCity: &a.ClosestBigCity}
		},
	}
}

func NewRouteHandler(svc resource.UseCase[domain.Route, domain.RouteInput]) *ResourceHandler[domain.Route, domain.RouteInput] {
	return &ResourceHandler[domain.Route, domain.RouteInput]{
		name:    "route",
		service: svc,
		list:    anyView(views.RouteListView),
		detail:  anyView(views.RouteDetailView),
		toInput: func(r domain.Route) domain.RouteInput {
			return domain.RouteInput{Source: &r.SourceID, Destination: &r.DestinationID, Distance: &r.Distance}
		},
	}
}

func NewAirplaneTypeHandler(svc resource.UseCase[domain.AirplaneType, domain.AirplaneTypeInput]) *ResourceHandler[domain.AirplaneType, domain.AirplaneTypeInput] {
	return &ResourceHandler[domain.AirplaneType, domain.AirplaneTypeInput]{
		name:    "airplane type",
		service: svc,
		list:    anyView(views.AirplaneTypeView),
		detail:  anyView(views.AirplaneTypeView),
		toInput: func(t domain.AirplaneType) domain.AirplaneTypeInput {
			return domain.AirplaneTypeInput{Name: &t.Name}
		},
	}
}

func NewAirplaneHandler(svc resource.UseCase[domain.Airplane, domain.AirplaneInput]) *ResourceHandler[domain.Airplane, domain.AirplaneInput] {
	return &ResourceHandler[domain.Airplane, domain.AirplaneInput]{
		name:    "airplane",
		service: svc,
		list:    anyView(views.AirplaneListView),
		detail:  anyView(views.AirplaneDetailView),
		toInput: func(a domain.Airplane) domain.AirplaneInput {
			return domain.AirplaneInput{Name: &a.Name, Rows: &a.Rows, SeatsInRow: &a.SeatsInRow, AirplaneType: &a.AirplaneTypeID}
		},
	}
}

func NewFlightHandler(svc resource.UseCase[domain.Flight, domain.FlightInput]) *ResourceHandler[domain.Flight, domain.FlightInput] {
	return &ResourceHandler[domain.Flight, domain.FlightInput]{
		name:    "flight",
		service: svc,
		list:    anyView(views.FlightListView),
		detail:  anyView(views.FlightDetailView),
		toInput: func(f domain.Flight) domain.FlightInput {
			return domain.FlightInput{
				Route:         &f.RouteID,
				Airplane:      &f.AirplaneID,
				DepartureTime: domain.NewDateTime(f.DepartureTime),
				ArrivalTime:   domain.NewDateTime(f.ArrivalTime),
			}
		},
	}
}

// NewOrderHandler defaults a new order's user to the caller.
func NewOrderHandler(svc resource.UseCase[domain.Order, domain.OrderInput]) *ResourceHandler[domain.Order, domain.OrderInput] {
	return &ResourceHandler[domain.Order, domain.OrderInput]{
		name:    "order",
		service: svc,
		list:    anyView(views.OrderView),
		detail:  anyView(views.OrderView),
		toInput: func(o domain.Order) domain.OrderInput {
			return domain.OrderInput{User: &o.UserID}
		},
		prepareCreate: func(c *gin.Context, in *domain.OrderInput) {
			if in.User != nil {
				return
			}
			if id, ok := middleware.IdentityFrom(c); ok {
				in.User = &id.UserID
			}
		},
	}
}

func newTicketResource(svc resource.UseCase[domain.Ticket, domain.TicketInput]) *ResourceHandler[domain.Ticket, domain.TicketInput] {
	return &ResourceHandler[domain.Ticket, domain.TicketInput]{
		name:    "ticket",
		service: svc,
		list:    anyView(views.TicketListView),
		detail:  anyView(views.TicketDetailView),
		toInput: func(t domain.Ticket) domain.TicketInput {
			return domain.TicketInput{Row: &t.Row, Seat: &t.Seat, Flight: &t.FlightID, Order: &t.OrderID}
		},
	}
}

func newCrewResource(svc resource.UseCase[domain.Crew, domain.CrewInput], mediaURL string) *ResourceHandler[domain.Crew, domain.CrewInput] {
	return &ResourceHandler[domain.Crew, domain.CrewInput]{
		name:    "crew",
		service: svc,
		list:    func(c domain.Crew) any { return views.CrewListView(c, mediaURL) },
		detail:  func(c domain.Crew) any { return views.CrewDetailView(c, mediaURL) },
		toInput: func(c domain.Crew) domain.CrewInput {
			flights := slices.Clone(c.FlightIDs)
			return domain.CrewInput{FirstName: &c.FirstName, LastName: &c.LastName, Flights: &flights}
		},
	}
}
