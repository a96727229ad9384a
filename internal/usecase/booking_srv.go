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
	"hotel-booking/pkg/metrics"
	"hotel-booking/pkg/roomlock"
	"hotel-booking/pkg/utils"
)

type BookingService interface {
	CreateReservation(ctx context.Context, receptionistID uuid.UUID, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	CancelReservation(ctx context.Context, reservationID string) error
	CheckIn(ctx context.Context, receptionistID uuid.UUID, reservationID string, req *request.CheckInRequest) (*response.RentalResponse, error)
	WalkInRental(ctx context.Context, receptionistID uuid.UUID, req *request.WalkInRentalRequest) (*response.RentalResponse, error)
	CheckOut(ctx context.Context, receptionistID uuid.UUID, rentalID string, req *request.CheckOutRequest) (*response.ReceiptResponse, error)
}

type bookingService struct {
	repo    *repository.Repository
	index   *interval.Index
	locks   *roomlock.Keeper
	pricing PricingService
	now     func() time.Time
	log     *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	index *interval.Index,
	locks *roomlock.Keeper,
	pricing PricingService,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:    repo,
		index:   index,
		locks:   locks,
		pricing: pricing,
		now:     time.Now,
		log:     log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateReservation(ctx context.Context, receptionistID uuid.UUID, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), entity.ErrValidation)
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID %q: %w", req.CustomerID, entity.ErrValidation)
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID %q: %w", req.RoomID, entity.ErrValidation)
	}

	span, err := interval.NewSpan(req.Checkin, req.Checkout)
	if err != nil {
		metrics.BookingsRejected.WithLabelValues("invalid").Inc()
		return nil, err
	}

	// Reservations claim future intervals only
	if span.Start.Before(s.now()) {
		metrics.BookingsRejected.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("checkin %s is in the past: %w", span.Start.Format(time.RFC3339), entity.ErrInvalidInterval)
	}

	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", req.CustomerID, entity.ErrNotFound)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", req.RoomID, entity.ErrNotFound)
	}

	quote, err := s.pricing.Quote(ctx, room.RoomTypeID, customer.CustomerType, span.Start, span.End, req.OccupantCount)
	if err != nil {
		return nil, err
	}

	release, err := s.locks.Acquire(ctx, roomID)
	if err != nil {
		metrics.BookingsRejected.WithLabelValues("busy").Inc()
		return nil, err
	}
	defer release()

	now := s.now()
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:     customerID,
		ReceptionistID: receptionistID,
		RoomID:         roomID,
		Checkin:        span.Start,
		Checkout:       span.End,
		OccupantCount:  req.OccupantCount,
		Deposit:        quote.Deposit,
		Status:         entity.ReservationStatusPending,
	}

	if err := s.index.Insert(roomID, span, reservation.ID); err != nil {
		metrics.BookingsRejected.WithLabelValues("conflict").Inc()
		s.log.Warn("Reservation rejected, interval occupied",
			zap.String("room_id", req.RoomID),
			zap.String("interval", span.String()),
		)
		return nil, err
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		// keep index and ledger in step
		s.index.Remove(roomID, reservation.ID)
		return nil, fmt.Errorf("persist reservation: %v: %w", err, entity.ErrStorage)
	}

	metrics.BookingsCreated.WithLabelValues("reservation").Inc()
	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("room_id", req.RoomID),
		zap.String("customer_id", req.CustomerID),
		zap.String("interval", span.String()),
		zap.Float64("deposit", reservation.Deposit),
	)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *bookingService) CancelReservation(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("invalid reservation ID %q: %w", reservationID, entity.ErrValidation)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	if reservation == nil {
		return fmt.Errorf("reservation %s: %w", reservationID, entity.ErrNotFound)
	}

	release, err := s.locks.Acquire(ctx, reservation.RoomID)
	if err != nil {
		return err
	}
	defer release()

	switch reservation.Status {
	case entity.ReservationStatusCheckedIn:
		return fmt.Errorf("reservation %s: %w", reservationID, entity.ErrAlreadyCheckedIn)
	case entity.ReservationStatusCancelled:
		return fmt.Errorf("reservation %s already cancelled: %w", reservationID, entity.ErrNotFound)
	}

	cancelled, err := s.repo.Reservation.MarkCancelled(ctx, id)
	if err != nil {
		return fmt.Errorf("cancel reservation: %v: %w", err, entity.ErrStorage)
	}
	if !cancelled {
		// lost the race against a concurrent check-in
		return fmt.Errorf("reservation %s: %w", reservationID, entity.ErrAlreadyCheckedIn)
	}

	s.index.Remove(reservation.RoomID, id)

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("room_id", reservation.RoomID.String()),
	)

	return nil
}

func (s *bookingService) CheckIn(ctx context.Context, receptionistID uuid.UUID, reservationID string, req *request.CheckInRequest) (*response.RentalResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check-in validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), entity.ErrValidation)
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID %q: %w", reservationID, entity.ErrValidation)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check in: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrNotFound)
	}

	switch reservation.Status {
	case entity.ReservationStatusCheckedIn:
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrAlreadyCheckedIn)
	case entity.ReservationStatusCancelled:
		return nil, fmt.Errorf("reservation %s is cancelled: %w", reservationID, entity.ErrNotFound)
	}

	if req.ActualCheckin.Before(reservation.Checkin) {
		return nil, fmt.Errorf("actual checkin %s precedes reserved checkin %s: %w",
			req.ActualCheckin.Format(time.RFC3339), reservation.Checkin.Format(time.RFC3339), entity.ErrInvalidInterval)
	}

	span, err := interval.NewSpan(req.ActualCheckin, reservation.Checkout)
	if err != nil {
		return nil, err
	}

	reservedSpan := interval.Span{Start: reservation.Checkin, End: reservation.Checkout}

	release, err := s.locks.Acquire(ctx, reservation.RoomID)
	if err != nil {
		metrics.BookingsRejected.WithLabelValues("busy").Inc()
		return nil, err
	}
	defer release()

	now := s.now()
	rental := &entity.RoomRental{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReceptionistID:  receptionistID,
		CustomerID:      reservation.CustomerID,
		RoomID:          reservation.RoomID,
		ReservationID:   &reservation.ID,
		Checkin:         span.Start,
		PlannedCheckout: span.End,
		OccupantCount:   reservation.OccupantCount,
		Deposit:         reservation.Deposit,
	}

	// The reservation's placeholder interval gives way to the rental's
	// real one; restored automatically if the new span conflicts.
	if err := s.index.Replace(reservation.RoomID, reservation.ID, span, rental.ID); err != nil {
		metrics.BookingsRejected.WithLabelValues("conflict").Inc()
		return nil, err
	}

	converted, err := s.repo.Rental.CreateFromReservation(ctx, rental)
	if err != nil {
		_ = s.index.Replace(reservation.RoomID, rental.ID, reservedSpan, reservation.ID)
		return nil, fmt.Errorf("persist check-in: %v: %w", err, entity.ErrStorage)
	}
	if !converted {
		_ = s.index.Replace(reservation.RoomID, rental.ID, reservedSpan, reservation.ID)
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrAlreadyCheckedIn)
	}

	metrics.BookingsCreated.WithLabelValues("rental").Inc()
	s.log.Info("Reservation checked in",
		zap.String("reservation_id", reservationID),
		zap.String("rental_id", rental.ID.String()),
		zap.String("room_id", reservation.RoomID.String()),
		zap.String("interval", span.String()),
	)

	resp := response.RentalToResponse(rental)
	return &resp, nil
}

func (s *bookingService) WalkInRental(ctx context.Context, receptionistID uuid.UUID, req *request.WalkInRentalRequest) (*response.RentalResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Walk-in validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), entity.ErrValidation)
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID %q: %w", req.CustomerID, entity.ErrValidation)
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID %q: %w", req.RoomID, entity.ErrValidation)
	}

	span, err := interval.NewSpan(req.Checkin, req.Checkout)
	if err != nil {
		metrics.BookingsRejected.WithLabelValues("invalid").Inc()
		return nil, err
	}

	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("walk-in rental: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", req.CustomerID, entity.ErrNotFound)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("walk-in rental: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", req.RoomID, entity.ErrNotFound)
	}

	quote, err := s.pricing.Quote(ctx, room.RoomTypeID, customer.CustomerType, span.Start, span.End, req.OccupantCount)
	if err != nil {
		return nil, err
	}

	release, err := s.locks.Acquire(ctx, roomID)
	if err != nil {
		metrics.BookingsRejected.WithLabelValues("busy").Inc()
		return nil, err
	}
	defer release()

	now := s.now()
	rental := &entity.RoomRental{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReceptionistID:  receptionistID,
		CustomerID:      customerID,
		RoomID:          roomID,
		Checkin:         span.Start,
		PlannedCheckout: span.End,
		OccupantCount:   req.OccupantCount,
		Deposit:         quote.Deposit,
	}

	if err := s.index.Insert(roomID, span, rental.ID); err != nil {
		metrics.BookingsRejected.WithLabelValues("conflict").Inc()
		s.log.Warn("Walk-in rejected, interval occupied",
			zap.String("room_id", req.RoomID),
			zap.String("interval", span.String()),
		)
		return nil, err
	}

	if err := s.repo.Rental.Create(ctx, rental); err != nil {
		s.index.Remove(roomID, rental.ID)
		return nil, fmt.Errorf("persist walk-in rental: %v: %w", err, entity.ErrStorage)
	}

	metrics.BookingsCreated.WithLabelValues("rental").Inc()
	s.log.Info("Walk-in rental created",
		zap.String("rental_id", rental.ID.String()),
		zap.String("room_id", req.RoomID),
		zap.String("customer_id", req.CustomerID),
		zap.String("interval", span.String()),
		zap.Float64("deposit", rental.Deposit),
	)

	resp := response.RentalToResponse(rental)
	return &resp, nil
}

func (s *bookingService) CheckOut(ctx context.Context, receptionistID uuid.UUID, rentalID string, req *request.CheckOutRequest) (*response.ReceiptResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check-out validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), entity.ErrValidation)
	}

	id, err := uuid.Parse(rentalID)
	if err != nil {
		return nil, fmt.Errorf("invalid rental ID %q: %w", rentalID, entity.ErrValidation)
	}

	rental, err := s.repo.Rental.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check out: %w", err)
	}
	if rental == nil {
		return nil, fmt.Errorf("rental %s: %w", rentalID, entity.ErrNotFound)
	}
	if rental.IsPaid {
		return nil, fmt.Errorf("rental %s: %w", rentalID, entity.ErrAlreadyPaid)
	}

	if !req.ActualCheckout.After(rental.Checkin) {
		return nil, fmt.Errorf("checkout %s must be after checkin %s: %w",
			req.ActualCheckout.Format(time.RFC3339), rental.Checkin.Format(time.RFC3339), entity.ErrInvalidInterval)
	}

	room, err := s.repo.Room.FindByID(ctx, rental.RoomID)
	if err != nil {
		return nil, fmt.Errorf("check out: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", rental.RoomID.String(), entity.ErrNotFound)
	}

	customer, err := s.repo.Customer.FindByID(ctx, rental.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("check out: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", rental.CustomerID.String(), entity.ErrNotFound)
	}

	// Final price covers the realized interval, not the planned one
	quote, err := s.pricing.Quote(ctx, room.RoomTypeID, customer.CustomerType, rental.Checkin, req.ActualCheckout, rental.OccupantCount)
	if err != nil {
		return nil, err
	}

	release, err := s.locks.Acquire(ctx, rental.RoomID)
	if err != nil {
		return nil, err
	}
	defer release()

	receipt := &entity.Receipt{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		ReceptionistID: receptionistID,
		RentalID:       rental.ID,
		TotalPrice:     quote.Total,
		AmountDue:      quote.Total - rental.Deposit,
	}

	settled, err := s.repo.Receipt.CreateAndSettle(ctx, receipt, req.ActualCheckout)
	if err != nil {
		return nil, fmt.Errorf("persist settlement: %v: %w", err, entity.ErrStorage)
	}
	if !settled {
		return nil, fmt.Errorf("rental %s: %w", rentalID, entity.ErrAlreadyPaid)
	}

	// stay is over, the room frees up going forward
	s.index.Remove(rental.RoomID, rental.ID)

	metrics.ReceiptsIssued.Inc()
	s.log.Info("Rental checked out",
		zap.String("rental_id", rentalID),
		zap.String("receipt_id", receipt.ID.String()),
		zap.Bool("walk_in", rental.IsWalkIn()),
		zap.Float64("total_price", receipt.TotalPrice),
		zap.Float64("amount_due", receipt.AmountDue),
	)

	resp := response.ReceiptToResponse(receipt)
	return &resp, nil
}
