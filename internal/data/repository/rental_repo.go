package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"
)

type RentalRepository interface {
	// Create persists a walk-in rental (no reservation link).
	Create(ctx context.Context, rental *entity.RoomRental) error

	// CreateFromReservation persists the rental and marks the linked
	// reservation checked-in in a single transaction. Returns false
	// when the reservation was no longer pending.
	CreateFromReservation(ctx context.Context, rental *entity.RoomRental) (bool, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomRental, error)

	// ListActiveIntervals returns the occupied intervals of all
	// unsettled rentals, for warming the interval index.
	ListActiveIntervals(ctx context.Context) ([]entity.OccupiedInterval, error)
}

type rentalRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRentalRepository(db database.PgxIface, log *zap.Logger) RentalRepository {
	return &rentalRepository{
		db:  db,
		log: log.With(zap.String("repository", "rental")),
	}
}

const insertRentalQuery = `
	INSERT INTO room_rentals (id, receptionist_id, customer_id, room_id, reservation_id,
		checkin_date, planned_checkout_date, checkout_date, occupant_count, deposit, is_paid,
		created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`

func (r *rentalRepository) Create(ctx context.Context, rental *entity.RoomRental) error {
	_, err := r.db.Exec(ctx, insertRentalQuery,
		rental.ID,
		rental.ReceptionistID,
		rental.CustomerID,
		rental.RoomID,
		rental.ReservationID,
		rental.Checkin,
		rental.PlannedCheckout,
		rental.Checkout,
		rental.OccupantCount,
		rental.Deposit,
		rental.IsPaid,
		rental.CreatedAt,
		rental.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create rental",
			zap.Error(err),
			zap.String("rental_id", rental.ID.String()),
			zap.String("room_id", rental.RoomID.String()),
		)
		return fmt.Errorf("create rental %s: %w", rental.ID.String(), err)
	}

	return nil
}

func (r *rentalRepository) CreateFromReservation(ctx context.Context, rental *entity.RoomRental) (bool, error) {
	if rental.ReservationID == nil {
		return false, fmt.Errorf("rental %s has no reservation link", rental.ID.String())
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin check-in transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `
		UPDATE reservations
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`, *rental.ReservationID, entity.ReservationStatusCheckedIn, entity.ReservationStatusPending)
	if err != nil {
		r.log.Error("Failed to mark reservation checked in",
			zap.Error(err),
			zap.String("reservation_id", rental.ReservationID.String()),
		)
		return false, fmt.Errorf("mark reservation %s checked in: %w", rental.ReservationID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	if _, err := tx.Exec(ctx, insertRentalQuery,
		rental.ID,
		rental.ReceptionistID,
		rental.CustomerID,
		rental.RoomID,
		rental.ReservationID,
		rental.Checkin,
		rental.PlannedCheckout,
		rental.Checkout,
		rental.OccupantCount,
		rental.Deposit,
		rental.IsPaid,
		rental.CreatedAt,
		rental.UpdatedAt,
	); err != nil {
		r.log.Error("Failed to create rental from reservation",
			zap.Error(err),
			zap.String("rental_id", rental.ID.String()),
		)
		return false, fmt.Errorf("create rental %s: %w", rental.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit check-in transaction: %w", err)
	}

	return true, nil
}

func (r *rentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomRental, error) {
	query := `
		SELECT id, receptionist_id, customer_id, room_id, reservation_id,
			checkin_date, planned_checkout_date, checkout_date, occupant_count, deposit, is_paid,
			created_at, updated_at
		FROM room_rentals
		WHERE id = $1
	`

	var rental entity.RoomRental
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rental.ID,
		&rental.ReceptionistID,
		&rental.CustomerID,
		&rental.RoomID,
		&rental.ReservationID,
		&rental.Checkin,
		&rental.PlannedCheckout,
		&rental.Checkout,
		&rental.OccupantCount,
		&rental.Deposit,
		&rental.IsPaid,
		&rental.CreatedAt,
		&rental.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rental by ID",
			zap.Error(err),
			zap.String("rental_id", id.String()),
		)
		return nil, fmt.Errorf("find rental by ID %s: %w", id.String(), err)
	}

	return &rental, nil
}

func (r *rentalRepository) ListActiveIntervals(ctx context.Context) ([]entity.OccupiedInterval, error) {
	query := `
		SELECT room_id, id, checkin_date, planned_checkout_date
		FROM room_rentals
		WHERE is_paid = FALSE
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list active rental intervals", zap.Error(err))
		return nil, fmt.Errorf("list active rental intervals: %w", err)
	}
	defer rows.Close()

	var intervals []entity.OccupiedInterval
	for rows.Next() {
		var iv entity.OccupiedInterval
		if err := rows.Scan(&iv.RoomID, &iv.OwnerID, &iv.Start, &iv.End); err != nil {
			r.log.Error("Failed to scan interval row", zap.Error(err))
			return nil, fmt.Errorf("scan interval row: %w", err)
		}
		intervals = append(intervals, iv)
	}

	return intervals, nil
}
