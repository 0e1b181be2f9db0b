package domain

import "fmt"

type Airport struct {
	ID             int64
	Name           string
	ClosestBigCity string
}

func (a Airport) String() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.ClosestBigCity)
}

type AirportInput struct {
	Name           *string `json:"name" validate:"required,max=255"`
	ClosestBigCity *string `json:"closest_big_city" validate:"required,max=255"`
}

// Route links two airports. Source and Destination are only loaded by detail reads.
type Route struct {
	ID            int64
	SourceID      int64
	DestinationID int64
	Distance      int
	Source        *Airport
	Destination   *Airport
}

func (r Route) String() string {
	if r.Source == nil || r.Destination == nil {
		return fmt.Sprintf("%d - %d", r.SourceID, r.DestinationID)
	}
	return fmt.Sprintf("%s - %s %s", r.Source.Name, r.Destination.Name, r.Destination.ClosestBigCity)
}

type RouteInput struct {
	Source      *int64 `json:"source" validate:"required"`
	Destination *int64 `json:"destination" validate:"required"`
	Distance    *int   `json:"distance" validate:"required"`
}
