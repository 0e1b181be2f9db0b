package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is idempotent. Every ownership edge is an ON DELETE CASCADE foreign key, so deleting
// a route removes its flights, their tickets and their crew assignments in the same statement.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		is_staff BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS airports (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		closest_big_city VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS routes (
		id BIGSERIAL PRIMARY KEY,
		source_id BIGINT NOT NULL,
		destination_id BIGINT NOT NULL,
		distance INTEGER NOT NULL,
		CONSTRAINT routes_source_fk FOREIGN KEY (source_id) REFERENCES airports(id) ON DELETE CASCADE,
		CONSTRAINT routes_destination_fk FOREIGN KEY (destination_id) REFERENCES airports(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS airplane_types (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS airplanes (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		rows INTEGER NOT NULL,
		seats_in_row INTEGER NOT NULL,
		airplane_type_id BIGINT NOT NULL,
		CONSTRAINT airplanes_airplane_type_fk FOREIGN KEY (airplane_type_id) REFERENCES airplane_types(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS flights (
		id BIGSERIAL PRIMARY KEY,
		route_id BIGINT NOT NULL,
		airplane_id BIGINT NOT NULL,
		departure_time TIMESTAMPTZ NOT NULL,
		arrival_time TIMESTAMPTZ NOT NULL,
		CONSTRAINT flights_route_fk FOREIGN KEY (route_id) REFERENCES routes(id) ON DELETE CASCADE,
		CONSTRAINT flights_airplane_fk FOREIGN KEY (airplane_id) REFERENCES airplanes(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS crews (
		id BIGSERIAL PRIMARY KEY,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		picture VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS crew_flights (
		crew_id BIGINT NOT NULL,
		flight_id BIGINT NOT NULL,
		PRIMARY KEY (crew_id, flight_id),
		CONSTRAINT crew_flights_crew_fk FOREIGN KEY (crew_id) REFERENCES crews(id) ON DELETE CASCADE,
		CONSTRAINT crew_flights_flight_fk FOREIGN KEY (flight_id) REFERENCES flights(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		user_id BIGINT NOT NULL,
		CONSTRAINT orders_user_fk FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id BIGSERIAL PRIMARY KEY,
		seat_row INTEGER NOT NULL,
		seat INTEGER NOT NULL,
		flight_id BIGINT NOT NULL,
		order_id BIGINT NOT NULL,
		CONSTRAINT tickets_flight_fk FOREIGN KEY (flight_id) REFERENCES flights(id) ON DELETE CASCADE,
		CONSTRAINT tickets_order_fk FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS flights_route_idx ON flights (route_id)`,
	`CREATE INDEX IF NOT EXISTS tickets_flight_idx ON tickets (flight_id)`,
	`CREATE INDEX IF NOT EXISTS tickets_order_idx ON tickets (order_id)`,
}

func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for i, stmt := range Schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i, err)
		}
	}
	return nil
}
