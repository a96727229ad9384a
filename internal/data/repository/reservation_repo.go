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

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	// MarkCancelled flips a pending reservation to cancelled. Returns
	// false when the reservation was not pending anymore.
	MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error)

	// ListOpenIntervals returns the intervals of all pending
	// reservations, for warming the interval index.
	ListOpenIntervals(ctx context.Context) ([]entity.OccupiedInterval, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, customer_id, receptionist_id, room_id, checkin_date, checkout_date,
			occupant_count, deposit, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.CustomerID,
		reservation.ReceptionistID,
		reservation.RoomID,
		reservation.Checkin,
		reservation.Checkout,
		reservation.OccupantCount,
		reservation.Deposit,
		reservation.Status,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
			zap.String("room_id", reservation.RoomID.String()),
		)
		return fmt.Errorf("create reservation %s: %w", reservation.ID.String(), err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `
		SELECT id, customer_id, receptionist_id, room_id, checkin_date, checkout_date,
			occupant_count, deposit, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.CustomerID,
		&reservation.ReceptionistID,
		&reservation.RoomID,
		&reservation.Checkin,
		&reservation.Checkout,
		&reservation.OccupantCount,
		&reservation.Deposit,
		&reservation.Status,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return &reservation, nil
}

func (r *reservationRepository) MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE reservations
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`

	result, err := r.db.Exec(ctx, query, id, entity.ReservationStatusCancelled, entity.ReservationStatusPending)
	if err != nil {
		r.log.Error("Failed to cancel reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return false, fmt.Errorf("cancel reservation %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *reservationRepository) ListOpenIntervals(ctx context.Context) ([]entity.OccupiedInterval, error) {
	query := `
		SELECT room_id, id, checkin_date, checkout_date
		FROM reservations
		WHERE status = $1
	`

	rows, err := r.db.Query(ctx, query, entity.ReservationStatusPending)
	if err != nil {
		r.log.Error("Failed to list open reservation intervals", zap.Error(err))
		return nil, fmt.Errorf("list open reservation intervals: %w", err)
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
