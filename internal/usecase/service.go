package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/interval"
	"hotel-booking/pkg/roomlock"
	"hotel-booking/pkg/utils"
)

type Service struct {
	Booking    BookingService
	Pricing    PricingService
	Room       RoomService
	Regulation RegulationService
}

func NewService(repo *repository.Repository, index *interval.Index, config *utils.Config, log *zap.Logger) *Service {
	locks := roomlock.NewKeeper(config.Booking.LockWait)
	pricing := NewPricingService(repo, log)

	return &Service{
		Booking:    NewBookingService(repo, index, locks, pricing, log),
		Pricing:    pricing,
		Room:       NewRoomService(repo, index, log),
		Regulation: NewRegulationService(repo, log),
	}
}

// WarmIndex rebuilds the in-memory interval index from the ledger so
// conflict checks survive a restart. Pending reservations and unsettled
// rentals contribute their intervals.
func WarmIndex(ctx context.Context, repo *repository.Repository, index *interval.Index, log *zap.Logger) error {
	reservations, err := repo.Reservation.ListOpenIntervals(ctx)
	if err != nil {
		return fmt.Errorf("load open reservations: %w", err)
	}

	rentals, err := repo.Rental.ListActiveIntervals(ctx)
	if err != nil {
		return fmt.Errorf("load active rentals: %w", err)
	}

	loaded := 0
	for _, occ := range append(reservations, rentals...) {
		span, err := interval.NewSpan(occ.Start, occ.End)
		if err != nil {
			log.Warn("Skipping malformed interval",
				zap.String("owner_id", occ.OwnerID.String()),
				zap.Error(err),
			)
			continue
		}
		if err := index.Insert(occ.RoomID, span, occ.OwnerID); err != nil {
			log.Warn("Skipping overlapping interval",
				zap.String("room_id", occ.RoomID.String()),
				zap.String("owner_id", occ.OwnerID.String()),
				zap.Error(err),
			)
			continue
		}
		loaded++
	}

	log.Info("Interval index warmed",
		zap.Int("reservations", len(reservations)),
		zap.Int("rentals", len(rentals)),
		zap.Int("loaded", loaded),
	)

	return nil
}
