package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/interval"
)

// PriceBreakdown is the monetary side of a stay. Total equals Subtotal:
// the deposit is a prepayment subtracted at settlement, not an addition.
type PriceBreakdown struct {
	NightlyRate float64
	Surcharge   float64
	Nights      int
	Subtotal    float64
	Deposit     float64
	Total       float64
}

type PricingService interface {
	Quote(ctx context.Context, roomTypeID uuid.UUID, customerType entity.CustomerType,
		checkin, checkout time.Time, occupantCount int) (*PriceBreakdown, error)
}

type pricingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPricingService(repo *repository.Repository, log *zap.Logger) PricingService {
	return &pricingService{
		repo: repo,
		log:  log.With(zap.String("service", "pricing")),
	}
}

// Quote prices a stay from the room-type regulation and customer-type
// rate. The per-night surcharge applies to occupants beyond the room
// capacity; the customer-type rate multiplies the whole subtotal.
func (s *pricingService) Quote(ctx context.Context, roomTypeID uuid.UUID, customerType entity.CustomerType,
	checkin, checkout time.Time, occupantCount int) (*PriceBreakdown, error) {

	span, err := interval.NewSpan(checkin, checkout)
	if err != nil {
		return nil, err
	}

	roomReg, err := s.repo.Regulation.GetRoomRegulation(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}
	if roomReg == nil {
		return nil, fmt.Errorf("no room regulation for room type %s: %w", roomTypeID.String(), entity.ErrUnknownRegulation)
	}

	customerReg, err := s.repo.Regulation.GetCustomerTypeRegulation(ctx, customerType)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}
	if customerReg == nil {
		return nil, fmt.Errorf("no regulation for customer type %s: %w", string(customerType), entity.ErrUnknownRegulation)
	}

	nights := span.Nights()

	extraOccupants := occupantCount - roomReg.Capacity
	if extraOccupants < 0 {
		extraOccupants = 0
	}
	surcharge := roomReg.Price * roomReg.SurchargeRate * float64(extraOccupants)

	subtotal := (roomReg.Price + surcharge) * float64(nights) * customerReg.Rate
	deposit := subtotal * roomReg.DepositRate

	return &PriceBreakdown{
		NightlyRate: roomReg.Price,
		Surcharge:   surcharge,
		Nights:      nights,
		Subtotal:    subtotal,
		Deposit:     deposit,
		Total:       subtotal,
	}, nil
}
