package domain

import (
	"fmt"
	"time"
)

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsStaff      bool
	CreatedAt    time.Time
}

type Order struct {
	ID            int64
	CreatedAt     time.Time
	UserID        int64
	CustomerEmail string
}

func (o Order) String() string {
	return fmt.Sprintf("%s - %s", o.CreatedAt.UTC().Format(DateTimeLayout), o.CustomerEmail)
}

// OrderInput.User falls back to the caller when omitted on create.
type OrderInput struct {
	User *int64 `json:"user" validate:"required"`
}

type Ticket struct {
	ID       int64
	Row      int
	Seat     int
	FlightID int64
	OrderID  int64
	Flight   *Flight
	Order    *Order
}

type TicketInput struct {
	Row    *int   `json:"row" validate:"required"`
	Seat   *int   `json:"seat" validate:"required"`
	Flight *int64 `json:"flight" validate:"required"`
	Order  *int64 `json:"order" validate:"required"`
}
