package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// flightDetailColumns expands a flight with its route (both airports) and airplane (with type).
// Scan targets come from flightDetailDest in the same order.
const flightDetailColumns = `
	f.id, f.route_id, f.airplane_id, f.departure_time, f.arrival_time,
	r.id, r.source_id, r.destination_id, r.distance,
	s.id, s.name, s.closest_big_city,
	d.id, d.name, d.closest_big_city,
	a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id,
	t.id, t.name`

const flightDetailJoins = `
	JOIN routes r ON r.id = f.route_id
	JOIN airports s ON s.id = r.source_id
	JOIN airports d ON d.id = r.destination_id
	JOIN airplanes a ON a.id = f.airplane_id
	JOIN airplane_types t ON t.id = a.airplane_type_id`

func newFlightDetail() *domain.Flight {
	return &domain.Flight{Route: newRouteDetail(), Airplane: newAirplaneDetail()}
}

func flightDetailDest(f *domain.Flight) []any {
	dest := []any{&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime}
	dest = append(dest, routeDetailDest(f.Route)...)
	return append(dest, airplaneDetailDest(f.Airplane)...)
}

type FlightRepository = Repository[domain.Flight, domain.FlightInput]

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT id, route_id, airplane_id, departure_time, arrival_time FROM flights ORDER BY departure_time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f := newFlightDetail()
	err := r.db.QueryRow(ctx, `SELECT `+flightDetailColumns+` FROM flights f `+flightDetailJoins+` WHERE f.id=$1`, id).
		Scan(flightDetailDest(f)...)
	if err != nil {
		return nil, mapError(err, "flight", id)
	}
	return f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, in domain.FlightInput) (*domain.Flight, error) {
	f := flightFromInput(0, in)
	err := r.db.QueryRow(ctx, `INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time) VALUES ($1, $2, $3, $4) RETURNING id`,
		f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime).Scan(&f.ID)
	if err != nil {
		return nil, mapError(err, "flight", 0)
	}
	return &f, nil
}

func (r *PGFlightRepository) Update(ctx context.Context, id int64, in domain.FlightInput) (*domain.Flight, error) {
	f := flightFromInput(id, in)
	err := r.db.QueryRow(ctx, `UPDATE flights SET route_id=$1, airplane_id=$2, departure_time=$3, arrival_time=$4 WHERE id=$5 RETURNING id`,
		f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime, id).Scan(&f.ID)
	if err != nil {
		return nil, mapError(err, "flight", id)
	}
	return &f, nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "flights", "flight", id)
}

var _ FlightRepository = (*PGFlightRepository)(nil)

func flightFromInput(id int64, in domain.FlightInput) domain.Flight {
	return domain.Flight{
		ID:            id,
		RouteID:       *in.Route,
		AirplaneID:    *in.Airplane,
		DepartureTime: in.DepartureTime.UTC(),
		ArrivalTime:   in.ArrivalTime.UTC(),
	}
}

// CrewRepository adds picture storage to the common contract.
type CrewRepository interface {
	Repository[domain.Crew, domain.CrewInput]
	SetPicture(ctx context.Context, id int64, picture string) (*domain.Crew, error)
}

type PGCrewRepository struct {
	db *pgxpool.Pool
}

func NewCrewRepository(db *pgxpool.Pool) CrewRepository {
	return &PGCrewRepository{db: db}
}

const crewListSelect = `
	SELECT c.id, c.first_name, c.last_name, c.picture,
	       COALESCE(array_agg(cf.flight_id ORDER BY cf.flight_id) FILTER (WHERE cf.flight_id IS NOT NULL), '{}')
	FROM crews c
	LEFT JOIN crew_flights cf ON cf.crew_id = c.id`

func (r *PGCrewRepository) List(ctx context.Context) ([]domain.Crew, error) {
	rows, err := r.db.Query(ctx, crewListSelect+` GROUP BY c.id ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crews := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Picture, &c.FlightIDs); err != nil {
			return nil, err
		}
		crews = append(crews, c)
	}
	return crews, rows.Err()
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getCrewFlat(ctx context.Context, q rowQuerier, id int64) (*domain.Crew, error) {
	var c domain.Crew
	row := q.QueryRow(ctx, crewListSelect+` WHERE c.id=$1 GROUP BY c.id`, id)
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Picture, &c.FlightIDs); err != nil {
		return nil, mapError(err, "crew", id)
	}
	return &c, nil
}

func (r *PGCrewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	c, err := getCrewFlat(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+flightDetailColumns+` FROM flights f `+flightDetailJoins+`
		JOIN crew_flights cf ON cf.flight_id = f.id
		WHERE cf.crew_id=$1 ORDER BY f.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	c.Flights = make([]domain.Flight, 0, len(c.FlightIDs))
	for rows.Next() {
		f := newFlightDetail()
		if err := rows.Scan(flightDetailDest(f)...); err != nil {
			return nil, err
		}
		c.Flights = append(c.Flights, *f)
	}
	return c, rows.Err()
}

func (r *PGCrewRepository) Create(ctx context.Context, in domain.CrewInput) (*domain.Crew, error) {
	var created *domain.Crew
	err := pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var id int64
		if err := tx.QueryRow(ctx, `INSERT INTO crews (first_name, last_name) VALUES ($1, $2) RETURNING id`,
			*in.FirstName, *in.LastName).Scan(&id); err != nil {
			return err
		}
		if err := replaceCrewFlights(ctx, tx, id, in.Flights); err != nil {
			return err
		}
		c, err := getCrewFlat(ctx, tx, id)
		created = c
		return err
	})
	if err != nil {
		return nil, mapError(err, "crew", 0)
	}
	return created, nil
}

func (r *PGCrewRepository) Update(ctx context.Context, id int64, in domain.CrewInput) (*domain.Crew, error) {
	var updated *domain.Crew
	err := pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx, `UPDATE crews SET first_name=$1, last_name=$2 WHERE id=$3`, *in.FirstName, *in.LastName, id)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		if err := replaceCrewFlights(ctx, tx, id, in.Flights); err != nil {
			return err
		}
		c, err := getCrewFlat(ctx, tx, id)
		updated = c
		return err
	})
	if err != nil {
		return nil, mapError(err, "crew", id)
	}
	return updated, nil
}

func (r *PGCrewRepository) SetPicture(ctx context.Context, id int64, picture string) (*domain.Crew, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE crews SET picture=$1 WHERE id=$2`, picture, id)
	if err != nil {
		return nil, mapError(err, "crew", id)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.NotFoundError{Resource: "crew", ID: id}
	}
	return getCrewFlat(ctx, r.db, id)
}

func (r *PGCrewRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "crews", "crew", id)
}

var _ CrewRepository = (*PGCrewRepository)(nil)

func replaceCrewFlights(ctx context.Context, tx pgx.Tx, crewID int64, flights *[]int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM crew_flights WHERE crew_id=$1`, crewID); err != nil {
		return fmt.Errorf("clear crew flights: %w", err)
	}
	if flights == nil || len(*flights) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `INSERT INTO crew_flights (crew_id, flight_id) SELECT DISTINCT $1::bigint, unnest($2::bigint[])`,
		crewID, *flights)
	return err
}
