package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"
)

type ReceiptRepository interface {
	// CreateAndSettle writes the receipt and finalizes the rental
	// (checkout date set, is_paid) in a single transaction. Returns
	// false when the rental was already settled.
	CreateAndSettle(ctx context.Context, receipt *entity.Receipt, checkout time.Time) (bool, error)

	FindByRentalID(ctx context.Context, rentalID uuid.UUID) (*entity.Receipt, error)
}

type receiptRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReceiptRepository(db database.PgxIface, log *zap.Logger) ReceiptRepository {
	return &receiptRepository{
		db:  db,
		log: log.With(zap.String("repository", "receipt")),
	}
}

func (r *receiptRepository) CreateAndSettle(ctx context.Context, receipt *entity.Receipt, checkout time.Time) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin settlement transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `
		UPDATE room_rentals
		SET checkout_date = $2, is_paid = TRUE, updated_at = NOW()
		WHERE id = $1 AND is_paid = FALSE
	`, receipt.RentalID, checkout)
	if err != nil {
		r.log.Error("Failed to settle rental",
			zap.Error(err),
			zap.String("rental_id", receipt.RentalID.String()),
		)
		return false, fmt.Errorf("settle rental %s: %w", receipt.RentalID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO receipts (id, receptionist_id, rental_id, total_price, amount_due, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		receipt.ID,
		receipt.ReceptionistID,
		receipt.RentalID,
		receipt.TotalPrice,
		receipt.AmountDue,
		receipt.CreatedAt,
	); err != nil {
		r.log.Error("Failed to create receipt",
			zap.Error(err),
			zap.String("rental_id", receipt.RentalID.String()),
		)
		return false, fmt.Errorf("create receipt for rental %s: %w", receipt.RentalID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit settlement transaction: %w", err)
	}

	return true, nil
}

func (r *receiptRepository) FindByRentalID(ctx context.Context, rentalID uuid.UUID) (*entity.Receipt, error) {
	query := `
		SELECT id, receptionist_id, rental_id, total_price, amount_due, created_at
		FROM receipts
		WHERE rental_id = $1
	`

	var receipt entity.Receipt
	err := r.db.QueryRow(ctx, query, rentalID).Scan(
		&receipt.ID,
		&receipt.ReceptionistID,
		&receipt.RentalID,
		&receipt.TotalPrice,
		&receipt.AmountDue,
		&receipt.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find receipt by rental ID",
			zap.Error(err),
			zap.String("rental_id", rentalID.String()),
		)
		return nil, fmt.Errorf("find receipt by rental ID %s: %w", rentalID.String(), err)
	}

	return &receipt, nil
}
