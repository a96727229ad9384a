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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Room, error)
	Count(ctx context.Context) (int64, error)

	CreateRoomType(ctx context.Context, roomType *entity.RoomType) error
	FindRoomTypeByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, name, image, room_type_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.Name,
		room.Image,
		room.RoomTypeID,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room", room.Name),
		)
		return fmt.Errorf("create room %s: %w", room.Name, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, name, image, room_type_id, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Image,
		&room.RoomTypeID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) List(ctx context.Context, limit, offset int) ([]*entity.Room, error) {
	query := `
		SELECT id, name, image, room_type_id, created_at, updated_at
		FROM rooms
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list rooms",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Image,
			&room.RoomTypeID,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

func (r *roomRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM rooms`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return 0, fmt.Errorf("count rooms: %w", err)
	}

	return count, nil
}

func (r *roomRepository) CreateRoomType(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		INSERT INTO room_types (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.CreatedAt,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room type",
			zap.Error(err),
			zap.String("room_type", roomType.Name),
		)
		return fmt.Errorf("create room type %s: %w", roomType.Name, err)
	}

	return nil
}

func (r *roomRepository) FindRoomTypeByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM room_types
		WHERE id = $1
	`

	var roomType entity.RoomType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&roomType.ID,
		&roomType.Name,
		&roomType.CreatedAt,
		&roomType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by ID",
			zap.Error(err),
			zap.String("room_type_id", id.String()),
		)
		return nil, fmt.Errorf("find room type by ID %s: %w", id.String(), err)
	}

	return &roomType, nil
}
