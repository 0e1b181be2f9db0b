package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewRepositories(t *testing.T) {
	pool := &pgxpool.Pool{}
	assert.NotNil(t, NewAirportRepository(pool))
	assert.NotNil(t, NewRouteRepository(pool))
	assert.NotNil(t, NewAirplaneTypeRepository(pool))
	assert.NotNil(t, NewAirplaneRepository(pool))
	assert.NotNil(t, NewFlightRepository(pool))
	assert.NotNil(t, NewCrewRepository(pool))
	assert.NotNil(t, NewOrderRepository(pool))
	assert.NotNil(t, NewTicketRepository(pool))
	assert.NotNil(t, NewUserRepository(pool))
}

func TestMapError_NoRows(t *testing.T) {
	err := mapError(fmt.Errorf("scan: %w", pgx.ErrNoRows), "route", 9)

	var nf domain.NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "route", nf.Resource)
	assert.Equal(t, int64(9), nf.ID)
}

func TestMapError_ForeignKey(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "flights_route_fk"}

	err := mapError(pgErr, "flight", 0)

	var ref domain.ReferenceError
	assert.True(t, errors.As(err, &ref))
	assert.Equal(t, "route", ref.Field)
}

func TestMapError_Unique(t *testing.T) {
	err := mapError(&pgconn.PgError{Code: pgUniqueViolation, Detail: "Key (email) already exists."}, "user", 0)
	assert.True(t, domain.IsConflict(err))
}

func TestMapError_PassThrough(t *testing.T) {
	boom := errors.New("connection reset")
	assert.Equal(t, boom, mapError(boom, "airport", 1))
	assert.NoError(t, mapError(nil, "airport", 1))
}

func TestSchema_CascadesOwnership(t *testing.T) {
	ddl := strings.Join(Schema, "\n")

	for constraint := range constraintFields {
		assert.Contains(t, ddl, "CONSTRAINT "+constraint+" ", "constraint %s must exist in the schema", constraint)
	}

	// Route -> Flight -> Ticket and Flight -> crew_flights must all cascade.
	for _, edge := range []string{
		"flights_route_fk FOREIGN KEY (route_id) REFERENCES routes(id) ON DELETE CASCADE",
		"tickets_flight_fk FOREIGN KEY (flight_id) REFERENCES flights(id) ON DELETE CASCADE",
		"crew_flights_flight_fk FOREIGN KEY (flight_id) REFERENCES flights(id) ON DELETE CASCADE",
		"tickets_order_fk FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE",
	} {
		assert.Contains(t, ddl, edge)
	}
}

func TestFlightDetailDest_MatchesColumns(t *testing.T) {
	f := newFlightDetail()
	columns := strings.Split(flightDetailColumns, ",")
	assert.Len(t, flightDetailDest(f), len(columns))
}
