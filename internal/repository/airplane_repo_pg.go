package repository

import (
	"context"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirplaneTypeRepository = Repository[domain.AirplaneType, domain.AirplaneTypeInput]

type PGAirplaneTypeRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneTypeRepository(db *pgxpool.Pool) AirplaneTypeRepository {
	return &PGAirplaneTypeRepository{db: db}
}

func (r *PGAirplaneTypeRepository) List(ctx context.Context) ([]domain.AirplaneType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM airplane_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *PGAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	var t domain.AirplaneType
	if err := r.db.QueryRow(ctx, `SELECT id, name FROM airplane_types WHERE id=$1`, id).Scan(&t.ID, &t.Name); err != nil {
		return nil, mapError(err, "airplane type", id)
	}
	return &t, nil
}

func (r *PGAirplaneTypeRepository) Create(ctx context.Context, in domain.AirplaneTypeInput) (*domain.AirplaneType, error) {
	t := domain.AirplaneType{Name: *in.Name}
	if err := r.db.QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID); err != nil {
		return nil, mapError(err, "airplane type", 0)
	}
	return &t, nil
}

func (r *PGAirplaneTypeRepository) Update(ctx context.Context, id int64, in domain.AirplaneTypeInput) (*domain.AirplaneType, error) {
	t := domain.AirplaneType{ID: id, Name: *in.Name}
	if err := r.db.QueryRow(ctx, `UPDATE airplane_types SET name=$1 WHERE id=$2 RETURNING id`, t.Name, id).Scan(&t.ID); err != nil {
		return nil, mapError(err, "airplane type", id)
	}
	return &t, nil
}

func (r *PGAirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "airplane_types", "airplane type", id)
}

var _ AirplaneTypeRepository = (*PGAirplaneTypeRepository)(nil)

type AirplaneRepository = Repository[domain.Airplane, domain.AirplaneInput]

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

func (r *PGAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, rows, seats_in_row, airplane_type_id FROM airplanes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID); err != nil {
			return nil, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, rows.Err()
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	a := newAirplaneDetail()
	err := r.db.QueryRow(ctx, `
		SELECT a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id, t.id, t.name
		FROM airplanes a
		JOIN airplane_types t ON t.id = a.airplane_type_id
		WHERE a.id=$1`, id).Scan(airplaneDetailDest(a)...)
	if err != nil {
		return nil, mapError(err, "airplane", id)
	}
	return a, nil
}

func (r *PGAirplaneRepository) Create(ctx context.Context, in domain.AirplaneInput) (*domain.Airplane, error) {
	a := domain.Airplane{Name: *in.Name, Rows: *in.Rows, SeatsInRow: *in.SeatsInRow, AirplaneTypeID: *in.AirplaneType}
	err := r.db.QueryRow(ctx, `INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		a.Name, a.Rows, a.SeatsInRow, a.AirplaneTypeID).Scan(&a.ID)
	if err != nil {
		return nil, mapError(err, "airplane", 0)
	}
	return &a, nil
}

func (r *PGAirplaneRepository) Update(ctx context.Context, id int64, in domain.AirplaneInput) (*domain.Airplane, error) {
	a := domain.Airplane{ID: id, Name: *in.Name, Rows: *in.Rows, SeatsInRow: *in.SeatsInRow, AirplaneTypeID: *in.AirplaneType}
	err := r.db.QueryRow(ctx, `UPDATE airplanes SET name=$1, rows=$2, seats_in_row=$3, airplane_type_id=$4 WHERE id=$5 RETURNING id`,
		a.Name, a.Rows, a.SeatsInRow, a.AirplaneTypeID, id).Scan(&a.ID)
	if err != nil {
		return nil, mapError(err, "airplane", id)
	}
	return &a, nil
}

func (r *PGAirplaneRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "airplanes", "airplane", id)
}

var _ AirplaneRepository = (*PGAirplaneRepository)(nil)

func newAirplaneDetail() *domain.Airplane {
	return &domain.Airplane{AirplaneType: &domain.AirplaneType{}}
}

func airplaneDetailDest(a *domain.Airplane) []any {
	return []any{&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID, &a.AirplaneType.ID, &a.AirplaneType.Name}
}
