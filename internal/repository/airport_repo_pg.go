package repository

import (
	"context"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository = Repository[domain.Airport, domain.AirportInput]

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, closest_big_city FROM airports ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.ClosestBigCity); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	var a domain.Airport
	err := r.db.QueryRow(ctx, `SELECT id, name, closest_big_city FROM airports WHERE id=$1`, id).
		Scan(&a.ID, &a.Name, &a.ClosestBigCity)
	if err != nil {
		return nil, mapError(err, "airport", id)
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, in domain.AirportInput) (*domain.Airport, error) {
	a := domain.Airport{Name: *in.Name, ClosestBigCity: *in.ClosestBigCity}
	err := r.db.QueryRow(ctx, `INSERT INTO airports (name, closest_big_city) VALUES ($1, $2) RETURNING id`,
		a.Name, a.ClosestBigCity).Scan(&a.ID)
	if err != nil {
		return nil, mapError(err, "airport", 0)
	}
	return &a, nil
}

func (r *PGAirportRepository) Update(ctx context.Context, id int64, in domain.AirportInput) (*domain.Airport, error) {
	a := domain.Airport{ID: id, Name: *in.Name, ClosestBigCity: *in.ClosestBigCity}
	err := r.db.QueryRow(ctx, `UPDATE airports SET name=$1, closest_big_city=$2 WHERE id=$3 RETURNING id`,
		a.Name, a.ClosestBigCity, id).Scan(&a.ID)
	if err != nil {
		return nil, mapError(err, "airport", id)
	}
	return &a, nil
}

func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "airports", "airport", id)
}

var _ AirportRepository = (*PGAirportRepository)(nil)

type RouteRepository = Repository[domain.Route, domain.RouteInput]

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

func (r *PGRouteRepository) List(ctx context.Context) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, `SELECT id, source_id, destination_id, distance FROM routes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		var rt domain.Route
		if err := rows.Scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.Distance); err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}
	return routes, rows.Err()
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	rt := newRouteDetail()
	err := r.db.QueryRow(ctx, `
		SELECT r.id, r.source_id, r.destination_id, r.distance,
		       s.id, s.name, s.closest_big_city,
		       d.id, d.name, d.closest_big_city
		FROM routes r
		JOIN airports s ON s.id = r.source_id
		JOIN airports d ON d.id = r.destination_id
		WHERE r.id=$1`, id).Scan(routeDetailDest(rt)...)
	if err != nil {
		return nil, mapError(err, "route", id)
	}
	return rt, nil
}

func (r *PGRouteRepository) Create(ctx context.Context, in domain.RouteInput) (*domain.Route, error) {
	rt := domain.Route{SourceID: *in.Source, DestinationID: *in.Destination, Distance: *in.Distance}
	err := r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		rt.SourceID, rt.DestinationID, rt.Distance).Scan(&rt.ID)
	if err != nil {
		return nil, mapError(err, "route", 0)
	}
	return &rt, nil
}

func (r *PGRouteRepository) Update(ctx context.Context, id int64, in domain.RouteInput) (*domain.Route, error) {
	rt := domain.Route{ID: id, SourceID: *in.Source, DestinationID: *in.Destination, Distance: *in.Distance}
	err := r.db.QueryRow(ctx, `UPDATE routes SET source_id=$1, destination_id=$2, distance=$3 WHERE id=$4 RETURNING id`,
		rt.SourceID, rt.DestinationID, rt.Distance, id).Scan(&rt.ID)
	if err != nil {
		return nil, mapError(err, "route", id)
	}
	return &rt, nil
}

func (r *PGRouteRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "routes", "route", id)
}

var _ RouteRepository = (*PGRouteRepository)(nil)

func newRouteDetail() *domain.Route {
	return &domain.Route{Source: &domain.Airport{}, Destination: &domain.Airport{}}
}

// routeDetailDest matches the column order r.*, source airport, destination airport.
func routeDetailDest(rt *domain.Route) []any {
	return []any{
		&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.Distance,
		&rt.Source.ID, &rt.Source.Name, &rt.Source.ClosestBigCity,
		&rt.Destination.ID, &rt.Destination.Name, &rt.Destination.ClosestBigCity,
	}
}
