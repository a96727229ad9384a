package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/interval"
	"hotel-booking/pkg/roomlock"
)

func TestWarmIndexRestoresOccupancy(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	resv, err := f.booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	require.NoError(t, err)

	_, err = f.booking.WalkInRental(ctx, f.recept, f.walkInReq(3, 5))
	require.NoError(t, err)

	// simulate a restart: fresh index fed from the same ledger
	rebuilt := interval.NewIndex()
	require.NoError(t, WarmIndex(ctx, f.repo, rebuilt, zap.NewNop()))

	locks := roomlock.NewKeeper(200 * time.Millisecond)
	pricing := NewPricingService(f.repo, zap.NewNop())
	booking := NewBookingService(f.repo, rebuilt, locks, pricing, zap.NewNop())

	_, err = booking.CreateReservation(ctx, f.recept, f.reservationReq(1, 2))
	assert.ErrorIs(t, err, entity.ErrConflict)

	_, err = booking.CreateReservation(ctx, f.recept, f.reservationReq(3, 4))
	assert.ErrorIs(t, err, entity.ErrConflict)

	// the gap between the two stays is still bookable
	_, err = booking.CreateReservation(ctx, f.recept, f.reservationReq(2, 3))
	assert.NoError(t, err)

	// cancel survives the rebuild: the reservation's claim frees up
	require.NoError(t, booking.CancelReservation(ctx, resv.ID))
	_, err = booking.CreateReservation(ctx, f.recept, f.reservationReq(0, 2))
	assert.NoError(t, err)
}

func TestWarmIndexSkipsSettledRentals(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	rental, err := f.booking.WalkInRental(ctx, f.recept, f.walkInReq(0, 2))
	require.NoError(t, err)

	_, err = f.booking.CheckOut(ctx, f.recept, rental.ID, &request.CheckOutRequest{
		ActualCheckout: f.base.AddDate(0, 0, 2),
	})
	require.NoError(t, err)

	rebuilt := interval.NewIndex()
	require.NoError(t, WarmIndex(ctx, f.repo, rebuilt, zap.NewNop()))

	span, err := interval.NewSpan(f.base, f.base.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.True(t, rebuilt.Free(f.room, span))
}
