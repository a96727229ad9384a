package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/data/repository/memory"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/interval"
	"hotel-booking/pkg/roomlock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type bookingFixture struct {
	store    *memory.Store
	repo     *repository.Repository
	index    *interval.Index
	booking  BookingService
	pricing  PricingService
	roomType uuid.UUID
	room     uuid.UUID
	customer uuid.UUID
	recept   uuid.UUID
	base     time.Time
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	store := memory.NewStore()
	repo := store.Repository()
	index := interval.NewIndex()
	locks := roomlock.NewKeeper(200 * time.Millisecond)
	log := zap.NewNop()
	pricing := NewPricingService(repo, log)

	f := &bookingFixture{
		store:    store,
		repo:     repo,
		index:    index,
		booking:  NewBookingService(repo, index, locks, pricing, log),
		pricing:  pricing,
		roomType: uuid.New(),
		room:     uuid.New(),
		customer: uuid.New(),
		recept:   uuid.New(),
		base:     time.Now().Add(72 * time.Hour).Truncate(time.Hour),
	}

	seedRegulations(t, repo, f.roomType)

	ctx := context.Background()
	require.NoError(t, repo.Room.CreateRoomType(ctx, &entity.RoomType{
		Base: entity.Base{ID: f.roomType},
		Name: "SINGLE",
	}))
	require.NoError(t, repo.Room.Create(ctx, &entity.Room{
		Base:       entity.Base{ID: f.room},
		Name:       "101",
		RoomTypeID: f.roomType,
	}))
	require.NoError(t, repo.Customer.Create(ctx, &entity.Customer{
		Base:         entity.Base{ID: f.customer},
		Name:         "Andi",
		CustomerType: entity.CustomerTypeDomestic,
	}))

	return f
}

func (f *bookingFixture) reservationReq(startDay, endDay int) *request.CreateReservationRequest {
	return &request.CreateReservationRequest{
		CustomerID:    f.customer.String(),
		RoomID:        f.room.String(),
		Checkin:       f.base.AddDate(0, 0, startDay),
		Checkout:      f.base.AddDate(0, 0, endDay),
		OccupantCount: 2,
	}
}

func (f *bookingFixture) walkInReq(startDay, endDay int) *request.WalkInRentalRequest {
	return &request.WalkInRentalRequest{
		CustomerID:    f.customer.String(),
		RoomID:        f.room.String(),
		Checkin:       f.base.AddDate(0, 0, startDay),
		Checkout:      f.base.AddDate(0, 0, endDay),
		OccupantCount: 2,
	}
}

func TestCreateReservation(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	resv, err := f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusPending, resv.Status)

	quote, err := f.pricing.Quote(ctx, f.roomType, entity.CustomerTypeDomestic, f.base, f.base.AddDate(0, 0, 2), 2)
	require.NoError(t, err)
	assert.Equal(t, quote.Deposit, resv.Deposit)

	stored, err := f.repo.Reservation.FindByID(ctx, uuid.MustParse(resv.ID))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.ReservationStatusPending, stored.Status)
}

func TestCreateReservationConflict(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 3))
	require.NoError(t, err)

	_, err = f.booking.CreateReservation(ctx, f.recept, f.reservationReq(1, 2))
	assert.ErrorIs(t, err, entity.ErrConflict)

	// a back-to-back stay starting at the previous checkout is fine
	_, err = f.booking.CreateReservation(ctx, f.recept, f.reservationReq(3, 5))
	assert.NoError(t, err)
}

func TestCreateReservationPastCheckin(t *testing.T) {
	f := newBookingFixture(t)

	req := f.reservationReq(0, 2)
	req.Checkin = time.Now().Add(-24 * time.Hour)

	_, err := f.booking.CreateReservation(context.Background(), f.recept, req)
	assert.ErrorIs(t, err, entity.ErrInvalidInterval)
}

func TestCreateReservationUnknownRefs(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	req := f.reservationReq(0, 2)
	req.CustomerID = uuid.New().String()
	_, err := f.booking.CreateReservation(ctx, f.recept, req)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	req = f.reservationReq(0, 2)
	req.RoomID = uuid.New().String()
	_, err = f.booking.CreateReservation(ctx, f.recept, req)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestMalformedBookingIDs(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	err := f.booking.CancelReservation(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = f.booking.CheckIn(ctx, f.recept, "not-a-uuid", &request.CheckInRequest{ActualCheckin: f.base})
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = f.booking.CheckOut(ctx, f.recept, "not-a-uuid", &request.CheckOutRequest{ActualCheckout: f.base.AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestCancelReservation(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	resv, err := f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	require.NoError(t, err)

	require.NoError(t, f.booking.CancelReservation(ctx, resv.ID))

	// the interval is free again
	_, err = f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	assert.NoError(t, err)

	// a second cancellation finds nothing to cancel
	err = f.booking.CancelReservation(ctx, resv.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCancelAfterCheckIn(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	resv, err := f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	require.NoError(t, err)

	_, err = f.booking.CheckIn(ctx, f.recept, resv.ID, &request.CheckInRequest{ActualCheckin: f.base})
	require.NoError(t, err)

	err = f.booking.CancelReservation(ctx, resv.ID)
	assert.ErrorIs(t, err, entity.ErrAlreadyCheckedIn)
}

func TestCheckIn(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	resv, err := f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	require.NoError(t, err)

	actual := f.base.Add(3 * time.Hour)
	rental, err := f.booking.CheckIn(ctx, f.recept, resv.ID, &request.CheckInRequest{ActualCheckin: actual})
	require.NoError(t, err)

	assert.Equal(t, resv.ID, *rental.ReservationID)
	assert.Equal(t, resv.Deposit, rental.Deposit)
	assert.Equal(t, actual, rental.Checkin)

	stored, err := f.repo.Reservation.FindByID(ctx, uuid.MustParse(resv.ID))
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCheckedIn, stored.Status)

	// the room stays blocked for the remainder of the stay
	_, err = f.booking.CreateReservation(ctx, f.recept, f.reservationReq(1, 2))
	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestCheckInBeforeReservedStart(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	resv, err := f.booking.CreateReservation(ctx, f.recept, f.reservationReq(1, 3))
	require.NoError(t, err)

	_, err = f.booking.CheckIn(ctx, f.recept, resv.ID, &request.CheckInRequest{ActualCheckin: f.base})
	assert.ErrorIs(t, err, entity.ErrInvalidInterval)
}

func TestCheckInTwice(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	resv, err := f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	require.NoError(t, err)

	_, err = f.booking.CheckIn(ctx, f.recept, resv.ID, &request.CheckInRequest{ActualCheckin: f.base})
	require.NoError(t, err)

	_, err = f.booking.CheckIn(ctx, f.recept, resv.ID, &request.CheckInRequest{ActualCheckin: f.base})
	assert.ErrorIs(t, err, entity.ErrAlreadyCheckedIn)
}

func TestCheckInUnknownReservation(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.booking.CheckIn(context.Background(), f.recept, uuid.New().String(), &request.CheckInRequest{ActualCheckin: f.base})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestWalkInRental(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	rental, err := f.booking.WalkInRental(ctx, f.recept, f.walkInReq(0, 2))
	require.NoError(t, err)
	assert.Nil(t, rental.ReservationID)

	// walk-in occupies the room like any other booking
	_, err = f.booking.CreateReservation(ctx, f.recept, f.reservationReq(1, 3))
	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestCheckOut(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	rental, err := f.booking.WalkInRental(ctx, f.recept, f.walkInReq(0, 2))
	require.NoError(t, err)

	actualCheckout := f.base.AddDate(0, 0, 2)
	receipt, err := f.booking.CheckOut(ctx, f.recept, rental.ID, &request.CheckOutRequest{ActualCheckout: actualCheckout})
	require.NoError(t, err)

	quote, err := f.pricing.Quote(ctx, f.roomType, entity.CustomerTypeDomestic, f.base, actualCheckout, 2)
	require.NoError(t, err)
	assert.Equal(t, quote.Total, receipt.TotalPrice)
	assert.Equal(t, quote.Total-rental.Deposit, receipt.AmountDue)

	// settling frees the room for the same interval
	_, err = f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	assert.NoError(t, err)
}

func TestCheckOutLateStay(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	rental, err := f.booking.WalkInRental(ctx, f.recept, f.walkInReq(0, 2))
	require.NoError(t, err)

	// overstaying one extra night is billed at the realized interval
	lateCheckout := f.base.AddDate(0, 0, 3)
	receipt, err := f.booking.CheckOut(ctx, f.recept, rental.ID, &request.CheckOutRequest{ActualCheckout: lateCheckout})
	require.NoError(t, err)

	quote, err := f.pricing.Quote(ctx, f.roomType, entity.CustomerTypeDomestic, f.base, lateCheckout, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, quote.Total, receipt.TotalPrice)
}

func TestCheckOutTwice(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	rental, err := f.booking.WalkInRental(ctx, f.recept, f.walkInReq(0, 2))
	require.NoError(t, err)

	checkout := &request.CheckOutRequest{ActualCheckout: f.base.AddDate(0, 0, 2)}
	_, err = f.booking.CheckOut(ctx, f.recept, rental.ID, checkout)
	require.NoError(t, err)

	_, err = f.booking.CheckOut(ctx, f.recept, rental.ID, checkout)
	assert.ErrorIs(t, err, entity.ErrAlreadyPaid)
}

func TestCheckOutNotAfterCheckin(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	rental, err := f.booking.WalkInRental(ctx, f.recept, f.walkInReq(0, 2))
	require.NoError(t, err)

	_, err = f.booking.CheckOut(ctx, f.recept, rental.ID, &request.CheckOutRequest{ActualCheckout: f.base})
	assert.ErrorIs(t, err, entity.ErrInvalidInterval)
}

func TestReservationRoundTrip(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	resv, err := f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	require.NoError(t, err)

	rental, err := f.booking.CheckIn(ctx, f.recept, resv.ID, &request.CheckInRequest{ActualCheckin: f.base})
	require.NoError(t, err)

	actualCheckout := f.base.AddDate(0, 0, 2)
	receipt, err := f.booking.CheckOut(ctx, f.recept, rental.ID, &request.CheckOutRequest{ActualCheckout: actualCheckout})
	require.NoError(t, err)

	quote, err := f.pricing.Quote(ctx, f.roomType, entity.CustomerTypeDomestic, f.base, actualCheckout, 2)
	require.NoError(t, err)

	assert.Equal(t, quote.Total, receipt.TotalPrice)
	assert.Equal(t, quote.Total-quote.Deposit, receipt.AmountDue)

	stored, err := f.repo.Receipt.FindByRentalID(ctx, uuid.MustParse(rental.ID))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, receipt.TotalPrice, stored.TotalPrice)
}

func TestReservationStorageFailureFreesInterval(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	f.store.FailNextWrite(assert.AnError)

	_, err := f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	assert.ErrorIs(t, err, entity.ErrStorage)

	// compensation removed the interval claim
	_, err = f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	assert.NoError(t, err)
}

func TestWalkInStorageFailureFreesInterval(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	f.store.FailNextWrite(assert.AnError)

	_, err := f.booking.WalkInRental(ctx, f.recept, f.walkInReq(0, 2))
	assert.ErrorIs(t, err, entity.ErrStorage)

	_, err = f.booking.WalkInRental(ctx, f.recept, f.walkInReq(0, 2))
	assert.NoError(t, err)
}

func TestCheckInStorageFailureRestoresReservation(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	resv, err := f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	require.NoError(t, err)

	f.store.FailNextWrite(assert.AnError)
	_, err = f.booking.CheckIn(ctx, f.recept, resv.ID, &request.CheckInRequest{ActualCheckin: f.base})
	assert.ErrorIs(t, err, entity.ErrStorage)

	// the reservation still holds its original interval
	stored, err := f.repo.Reservation.FindByID(ctx, uuid.MustParse(resv.ID))
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusPending, stored.Status)

	_, err = f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	assert.ErrorIs(t, err, entity.ErrConflict)

	// and check-in still works afterwards
	_, err = f.booking.CheckIn(ctx, f.recept, resv.ID, &request.CheckInRequest{ActualCheckin: f.base})
	assert.NoError(t, err)
}

func TestConcurrentWalkInsSingleWinner(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	const workers = 8

	var wg sync.WaitGroup
	results := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.booking.WalkInRental(ctx, f.recept, f.walkInReq(0, 2))
		}(i)
	}
	wg.Wait()

	wins, conflicts := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, entity.ErrConflict):
			conflicts++
		case errors.Is(err, entity.ErrBusy):
			// acceptable under lock contention
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.GreaterOrEqual(t, conflicts, 1, "no loser observed the overlap rejection")
}
