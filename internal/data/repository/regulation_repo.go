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

type RegulationRepository interface {
	GetRoomRegulation(ctx context.Context, roomTypeID uuid.UUID) (*entity.RoomRegulation, error)
	GetCustomerTypeRegulation(ctx context.Context, customerType entity.CustomerType) (*entity.CustomerTypeRegulation, error)
	UpsertRoomRegulation(ctx context.Context, regulation *entity.RoomRegulation) error
	UpsertCustomerTypeRegulation(ctx context.Context, regulation *entity.CustomerTypeRegulation) error
}

type regulationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRegulationRepository(db database.PgxIface, log *zap.Logger) RegulationRepository {
	return &regulationRepository{
		db:  db,
		log: log.With(zap.String("repository", "regulation")),
	}
}

func (r *regulationRepository) GetRoomRegulation(ctx context.Context, roomTypeID uuid.UUID) (*entity.RoomRegulation, error) {
	query := `
		SELECT room_type_id, admin_id, room_quantity, capacity, price, surcharge_rate, deposit_rate, distance
		FROM room_regulations
		WHERE room_type_id = $1
	`

	var regulation entity.RoomRegulation
	err := r.db.QueryRow(ctx, query, roomTypeID).Scan(
		&regulation.RoomTypeID,
		&regulation.AdminID,
		&regulation.RoomQuantity,
		&regulation.Capacity,
		&regulation.Price,
		&regulation.SurchargeRate,
		&regulation.DepositRate,
		&regulation.Distance,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get room regulation",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return nil, fmt.Errorf("get room regulation for %s: %w", roomTypeID.String(), err)
	}

	return &regulation, nil
}

func (r *regulationRepository) GetCustomerTypeRegulation(ctx context.Context, customerType entity.CustomerType) (*entity.CustomerTypeRegulation, error) {
	query := `
		SELECT customer_type, admin_id, rate
		FROM customer_type_regulations
		WHERE customer_type = $1
	`

	var regulation entity.CustomerTypeRegulation
	err := r.db.QueryRow(ctx, query, customerType).Scan(
		&regulation.CustomerType,
		&regulation.AdminID,
		&regulation.Rate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get customer type regulation",
			zap.Error(err),
			zap.String("customer_type", string(customerType)),
		)
		return nil, fmt.Errorf("get customer type regulation for %s: %w", string(customerType), err)
	}

	return &regulation, nil
}

func (r *regulationRepository) UpsertRoomRegulation(ctx context.Context, regulation *entity.RoomRegulation) error {
	query := `
		INSERT INTO room_regulations (room_type_id, admin_id, room_quantity, capacity, price, surcharge_rate, deposit_rate, distance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (room_type_id) DO UPDATE SET
			admin_id = EXCLUDED.admin_id,
			room_quantity = EXCLUDED.room_quantity,
			capacity = EXCLUDED.capacity,
			price = EXCLUDED.price,
			surcharge_rate = EXCLUDED.surcharge_rate,
			deposit_rate = EXCLUDED.deposit_rate,
			distance = EXCLUDED.distance
	`

	_, err := r.db.Exec(ctx, query,
		regulation.RoomTypeID,
		regulation.AdminID,
		regulation.RoomQuantity,
		regulation.Capacity,
		regulation.Price,
		regulation.SurchargeRate,
		regulation.DepositRate,
		regulation.Distance,
	)

	if err != nil {
		r.log.Error("Failed to upsert room regulation",
			zap.Error(err),
			zap.String("room_type_id", regulation.RoomTypeID.String()),
		)
		return fmt.Errorf("upsert room regulation for %s: %w", regulation.RoomTypeID.String(), err)
	}

	return nil
}

func (r *regulationRepository) UpsertCustomerTypeRegulation(ctx context.Context, regulation *entity.CustomerTypeRegulation) error {
	query := `
		INSERT INTO customer_type_regulations (customer_type, admin_id, rate)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_type) DO UPDATE SET
			admin_id = EXCLUDED.admin_id,
			rate = EXCLUDED.rate
	`

	_, err := r.db.Exec(ctx, query,
		regulation.CustomerType,
		regulation.AdminID,
		regulation.Rate,
	)

	if err != nil {
		r.log.Error("Failed to upsert customer type regulation",
			zap.Error(err),
			zap.String("customer_type", string(regulation.CustomerType)),
		)
		return fmt.Errorf("upsert customer type regulation for %s: %w", string(regulation.CustomerType), err)
	}

	return nil
}
