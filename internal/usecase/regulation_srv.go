package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"
)

type RegulationService interface {
	GetRoomRegulation(ctx context.Context, roomTypeID string) (*response.RoomRegulationResponse, error)
	UpsertRoomRegulation(ctx context.Context, roomTypeID string, req *request.UpsertRoomRegulationRequest) (*response.RoomRegulationResponse, error)
	GetCustomerTypeRegulation(ctx context.Context, customerType string) (*response.CustomerTypeRegulationResponse, error)
	UpsertCustomerTypeRegulation(ctx context.Context, customerType string, req *request.UpsertCustomerTypeRegulationRequest) (*response.CustomerTypeRegulationResponse, error)
}

type regulationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRegulationService(repo *repository.Repository, log *zap.Logger) RegulationService {
	return &regulationService{
		repo: repo,
		log:  log.With(zap.String("service", "regulation")),
	}
}

func (s *regulationService) GetRoomRegulation(ctx context.Context, roomTypeID string) (*response.RoomRegulationResponse, error) {
	id, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID %q: %w", roomTypeID, entity.ErrValidation)
	}

	regulation, err := s.repo.Regulation.GetRoomRegulation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room regulation: %w", err)
	}
	if regulation == nil {
		return nil, fmt.Errorf("room regulation for type %s: %w", roomTypeID, entity.ErrUnknownRegulation)
	}

	resp := response.RoomRegulationToResponse(regulation)
	return &resp, nil
}

func (s *regulationService) UpsertRoomRegulation(ctx context.Context, roomTypeID string, req *request.UpsertRoomRegulationRequest) (*response.RoomRegulationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Room regulation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), entity.ErrValidation)
	}

	id, err := uuid.Parse(roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type ID %q: %w", roomTypeID, entity.ErrValidation)
	}

	adminID, err := uuid.Parse(req.AdminID)
	if err != nil {
		return nil, fmt.Errorf("invalid admin ID %q: %w", req.AdminID, entity.ErrValidation)
	}

	roomType, err := s.repo.Room.FindRoomTypeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("upsert room regulation: %w", err)
	}
	if roomType == nil {
		return nil, fmt.Errorf("room type %s: %w", roomTypeID, entity.ErrNotFound)
	}

	regulation := &entity.RoomRegulation{
		RoomTypeID:    id,
		AdminID:       adminID,
		RoomQuantity:  req.RoomQuantity,
		Capacity:      req.Capacity,
		Price:         req.Price,
		SurchargeRate: req.SurchargeRate,
		DepositRate:   req.DepositRate,
		Distance:      req.Distance,
	}
	if err := regulation.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, entity.ErrValidation)
	}

	if err := s.repo.Regulation.UpsertRoomRegulation(ctx, regulation); err != nil {
		return nil, fmt.Errorf("upsert room regulation: %v: %w", err, entity.ErrStorage)
	}

	s.log.Info("Room regulation updated",
		zap.String("room_type_id", roomTypeID),
		zap.Float64("price", regulation.Price),
		zap.Int("capacity", regulation.Capacity),
	)

	resp := response.RoomRegulationToResponse(regulation)
	return &resp, nil
}

func (s *regulationService) GetCustomerTypeRegulation(ctx context.Context, customerType string) (*response.CustomerTypeRegulationResponse, error) {
	ct := entity.CustomerType(customerType)
	if !ct.Valid() {
		return nil, fmt.Errorf("unknown customer type %s: %w", customerType, entity.ErrNotFound)
	}

	regulation, err := s.repo.Regulation.GetCustomerTypeRegulation(ctx, ct)
	if err != nil {
		return nil, fmt.Errorf("get customer type regulation: %w", err)
	}
	if regulation == nil {
		return nil, fmt.Errorf("customer type regulation for %s: %w", customerType, entity.ErrUnknownRegulation)
	}

	resp := response.CustomerTypeRegulationToResponse(regulation)
	return &resp, nil
}

func (s *regulationService) UpsertCustomerTypeRegulation(ctx context.Context, customerType string, req *request.UpsertCustomerTypeRegulationRequest) (*response.CustomerTypeRegulationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Customer type regulation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), entity.ErrValidation)
	}

	ct := entity.CustomerType(customerType)
	if !ct.Valid() {
		return nil, fmt.Errorf("unknown customer type %s: %w", customerType, entity.ErrNotFound)
	}

	adminID, err := uuid.Parse(req.AdminID)
	if err != nil {
		return nil, fmt.Errorf("invalid admin ID %q: %w", req.AdminID, entity.ErrValidation)
	}

	regulation := &entity.CustomerTypeRegulation{
		CustomerType: ct,
		AdminID:      adminID,
		Rate:         req.Rate,
	}
	if err := regulation.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, entity.ErrValidation)
	}

	if err := s.repo.Regulation.UpsertCustomerTypeRegulation(ctx, regulation); err != nil {
		return nil, fmt.Errorf("upsert customer type regulation: %v: %w", err, entity.ErrStorage)
	}

	s.log.Info("Customer type regulation updated",
		zap.String("customer_type", customerType),
		zap.Float64("rate", regulation.Rate),
	)

	resp := response.CustomerTypeRegulationToResponse(regulation)
	return &resp, nil
}
