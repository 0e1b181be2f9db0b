package repository

import (
	"context"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository = Repository[domain.Order, domain.OrderInput]

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

const orderSelect = `SELECT o.id, o.created_at, o.user_id, u.email FROM orders o JOIN users u ON u.id = o.user_id`

func orderDest(o *domain.Order) []any {
	return []any{&o.ID, &o.CreatedAt, &o.UserID, &o.CustomerEmail}
}

func (r *PGOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, orderSelect+` ORDER BY o.created_at DESC, o.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(orderDest(&o)...); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PGOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.QueryRow(ctx, orderSelect+` WHERE o.id=$1`, id).Scan(orderDest(&o)...); err != nil {
		return nil, mapError(err, "order", id)
	}
	return &o, nil
}

func (r *PGOrderRepository) Create(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `
		WITH o AS (INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at, user_id)
		SELECT o.id, o.created_at, o.user_id, u.email FROM o JOIN users u ON u.id = o.user_id`,
		*in.User).Scan(orderDest(&o)...)
	if err != nil {
		return nil, mapError(err, "order", 0)
	}
	return &o, nil
}

// Update reassigns the owner only; created_at never changes.
func (r *PGOrderRepository) Update(ctx context.Context, id int64, in domain.OrderInput) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `
		WITH o AS (UPDATE orders SET user_id=$1 WHERE id=$2 RETURNING id, created_at, user_id)
		SELECT o.id, o.created_at, o.user_id, u.email FROM o JOIN users u ON u.id = o.user_id`,
		*in.User, id).Scan(orderDest(&o)...)
	if err != nil {
		return nil, mapError(err, "order", id)
	}
	return &o, nil
}

func (r *PGOrderRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "orders", "order", id)
}

var _ OrderRepository = (*PGOrderRepository)(nil)

type TicketRepository = Repository[domain.Ticket, domain.TicketInput]

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

func (r *PGTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT id, seat_row, seat, flight_id, order_id FROM tickets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *PGTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	t := domain.Ticket{Flight: newFlightDetail(), Order: &domain.Order{}}
	dest := []any{&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID}
	dest = append(dest, flightDetailDest(t.Flight)...)
	dest = append(dest, orderDest(t.Order)...)

	err := r.db.QueryRow(ctx, `
		SELECT tk.id, tk.seat_row, tk.seat, tk.flight_id, tk.order_id,`+flightDetailColumns+`,
		       o.id, o.created_at, o.user_id, u.email
		FROM tickets tk
		JOIN flights f ON f.id = tk.flight_id`+flightDetailJoins+`
		JOIN orders o ON o.id = tk.order_id
		JOIN users u ON u.id = o.user_id
		WHERE tk.id=$1`, id).Scan(dest...)
	if err != nil {
		return nil, mapError(err, "ticket", id)
	}
	return &t, nil
}

func (r *PGTicketRepository) Create(ctx context.Context, in domain.TicketInput) (*domain.Ticket, error) {
	t := ticketFromInput(0, in)
	err := r.db.QueryRow(ctx, `INSERT INTO tickets (seat_row, seat, flight_id, order_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		t.Row, t.Seat, t.FlightID, t.OrderID).Scan(&t.ID)
	if err != nil {
		return nil, mapError(err, "ticket", 0)
	}
	return &t, nil
}

func (r *PGTicketRepository) Update(ctx context.Context, id int64, in domain.TicketInput) (*domain.Ticket, error) {
	t := ticketFromInput(id, in)
	err := r.db.QueryRow(ctx, `UPDATE tickets SET seat_row=$1, seat=$2, flight_id=$3, order_id=$4 WHERE id=$5 RETURNING id`,
		t.Row, t.Seat, t.FlightID, t.OrderID, id).Scan(&t.ID)
	if err != nil {
		return nil, mapError(err, "ticket", id)
	}
	return &t, nil
}

func (r *PGTicketRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "tickets", "ticket", id)
}

var _ TicketRepository = (*PGTicketRepository)(nil)

func ticketFromInput(id int64, in domain.TicketInput) domain.Ticket {
	return domain.Ticket{ID: id, Row: *in.Row, Seat: *in.Seat, FlightID: *in.Flight, OrderID: *in.Order}
}
