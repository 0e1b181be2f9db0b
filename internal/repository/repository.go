package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Repository is the storage contract shared by every resource.
// List returns list-shape rows; GetByID loads what the detail shape embeds.
type Repository[E any, In any] interface {
	List(ctx context.Context) ([]E, error)
	GetByID(ctx context.Context, id int64) (*E, error)
	Create(ctx context.Context, in In) (*E, error)
	Update(ctx context.Context, id int64, in In) (*E, error)
	Delete(ctx context.Context, id int64) error
}

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// constraintFields maps FK constraint names from schema.go to the JSON field a caller sent.
var constraintFields = map[string]string{
	"routes_source_fk":           "source",
	"routes_destination_fk":      "destination",
	"airplanes_airplane_type_fk": "airplane_type",
	"flights_route_fk":           "route",
	"flights_airplane_fk":        "airplane",
	"crew_flights_flight_fk":     "flight",
	"orders_user_fk":             "user",
	"tickets_flight_fk":          "flight",
	"tickets_order_fk":           "order",
}

// mapError translates pgx errors into the domain taxonomy.
func mapError(err error, resource string, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, ID: id, Err: err}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return domain.ReferenceError{Field: constraintFields[pgErr.ConstraintName], Err: err}
		case pgUniqueViolation:
			return domain.ConflictError{Resource: resource, Msg: pgErr.Detail, Err: err}
		}
	}
	return err
}

func deleteByID(ctx context.Context, db execer, table, resource string, id int64) error {
	cmd, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE id=$1`, id)
	if err != nil {
		return mapError(err, resource, id)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundError{Resource: resource, ID: id}
	}
	return nil
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}
