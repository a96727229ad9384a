package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/interval"
)

type RoomService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error)
	Availability(ctx context.Context, roomID string, checkin, checkout time.Time) (*response.AvailabilityResponse, error)
}

type roomService struct {
	repo  *repository.Repository
	index *interval.Index
	log   *zap.Logger
}

func NewRoomService(repo *repository.Repository, index *interval.Index, log *zap.Logger) RoomService {
	return &roomService{
		repo:  repo,
		index: index,
		log:   log.With(zap.String("service", "room")),
	}
}

func (s *roomService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error) {
	rooms, err := s.repo.Room.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	total, err := s.repo.Room.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	data := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		data = append(data, response.RoomToResponse(room))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *roomService) Availability(ctx context.Context, roomID string, checkin, checkout time.Time) (*response.AvailabilityResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID %q: %w", roomID, entity.ErrValidation)
	}

	span, err := interval.NewSpan(checkin, checkout)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", roomID, entity.ErrNotFound)
	}

	return &response.AvailabilityResponse{
		RoomID:    roomID,
		Checkin:   span.Start,
		Checkout:  span.End,
		Available: s.index.Free(id, span),
	}, nil
}
