package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS room_types (
		id UUID PRIMARY KEY,
		name VARCHAR(50) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id UUID PRIMARY KEY,
		name VARCHAR(50) NOT NULL UNIQUE,
		image VARCHAR(500) NOT NULL DEFAULT '',
		room_type_id UUID NOT NULL REFERENCES room_types (id),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		identification VARCHAR(15) UNIQUE,
		customer_type VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS room_regulations (
		room_type_id UUID PRIMARY KEY REFERENCES room_types (id),
		admin_id UUID NOT NULL,
		room_quantity INT NOT NULL DEFAULT 10,
		capacity INT NOT NULL DEFAULT 2,
		price DOUBLE PRECISION NOT NULL DEFAULT 100000,
		surcharge_rate DOUBLE PRECISION NOT NULL DEFAULT 0.25,
		deposit_rate DOUBLE PRECISION NOT NULL DEFAULT 0.3,
		distance INT NOT NULL DEFAULT 28
	)`,
	`CREATE TABLE IF NOT EXISTS customer_type_regulations (
		customer_type VARCHAR(20) PRIMARY KEY,
		admin_id UUID NOT NULL,
		rate DOUBLE PRECISION NOT NULL DEFAULT 1.0
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id UUID PRIMARY KEY,
		customer_id UUID NOT NULL REFERENCES customers (id),
		receptionist_id UUID NOT NULL,
		room_id UUID NOT NULL REFERENCES rooms (id),
		checkin_date TIMESTAMPTZ NOT NULL,
		checkout_date TIMESTAMPTZ NOT NULL,
		occupant_count INT NOT NULL DEFAULT 1,
		deposit DOUBLE PRECISION NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CHECK (checkin_date < checkout_date)
	)`,
	`CREATE TABLE IF NOT EXISTS room_rentals (
		id UUID PRIMARY KEY,
		receptionist_id UUID NOT NULL,
		customer_id UUID NOT NULL REFERENCES customers (id),
		room_id UUID NOT NULL REFERENCES rooms (id),
		reservation_id UUID REFERENCES reservations (id),
		checkin_date TIMESTAMPTZ NOT NULL,
		planned_checkout_date TIMESTAMPTZ NOT NULL,
		checkout_date TIMESTAMPTZ,
		occupant_count INT NOT NULL DEFAULT 1,
		deposit DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_paid BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (reservation_id)
	)`,
	`CREATE TABLE IF NOT EXISTS receipts (
		id UUID PRIMARY KEY,
		receptionist_id UUID NOT NULL,
		rental_id UUID NOT NULL UNIQUE REFERENCES room_rentals (id),
		total_price DOUBLE PRECISION NOT NULL,
		amount_due DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_room ON reservations (room_id, checkin_date)`,
	`CREATE INDEX IF NOT EXISTS idx_room_rentals_room ON room_rentals (room_id, checkin_date)`,
}

// Migrate applies the schema. Statements are idempotent so it is safe
// to run on every startup.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
