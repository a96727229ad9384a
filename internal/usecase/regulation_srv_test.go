package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository/memory"
	"hotel-booking/internal/dto/request"
)

func TestRoomRegulationUpsert(t *testing.T) {
	repo := memory.NewStore().Repository()
	svc := NewRegulationService(repo, zap.NewNop())
	ctx := context.Background()

	roomTypeID := uuid.New()
	require.NoError(t, repo.Room.CreateRoomType(ctx, &entity.RoomType{
		Base: entity.Base{ID: roomTypeID},
		Name: "DOUBLE",
	}))

	req := &request.UpsertRoomRegulationRequest{
		AdminID:       uuid.New().String(),
		RoomQuantity:  5,
		Capacity:      2,
		Price:         4_500_000,
		SurchargeRate: 0.2,
		DepositRate:   0.25,
		Distance:      2,
	}

	created, err := svc.UpsertRoomRegulation(ctx, roomTypeID.String(), req)
	require.NoError(t, err)
	assert.Equal(t, 4_500_000.0, created.Price)

	// second upsert replaces the rule in place
	req.Price = 5_000_000
	updated, err := svc.UpsertRoomRegulation(ctx, roomTypeID.String(), req)
	require.NoError(t, err)
	assert.Equal(t, 5_000_000.0, updated.Price)

	fetched, err := svc.GetRoomRegulation(ctx, roomTypeID.String())
	require.NoError(t, err)
	assert.Equal(t, 5_000_000.0, fetched.Price)

	t.Run("unknown room type", func(t *testing.T) {
		_, err := svc.UpsertRoomRegulation(ctx, uuid.New().String(), req)
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("malformed room type id", func(t *testing.T) {
		_, err := svc.GetRoomRegulation(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, entity.ErrValidation)

		_, err = svc.UpsertRoomRegulation(ctx, "not-a-uuid", req)
		assert.ErrorIs(t, err, entity.ErrValidation)
	})

	t.Run("deposit rate out of range", func(t *testing.T) {
		bad := *req
		bad.DepositRate = 1.5
		_, err := svc.UpsertRoomRegulation(ctx, roomTypeID.String(), &bad)
		assert.ErrorIs(t, err, entity.ErrValidation)
	})

	t.Run("missing regulation", func(t *testing.T) {
		other := uuid.New()
		require.NoError(t, repo.Room.CreateRoomType(ctx, &entity.RoomType{
			Base: entity.Base{ID: other},
			Name: "SUITE",
		}))
		_, err := svc.GetRoomRegulation(ctx, other.String())
		assert.ErrorIs(t, err, entity.ErrUnknownRegulation)
	})
}

func TestCustomerTypeRegulationUpsert(t *testing.T) {
	repo := memory.NewStore().Repository()
	svc := NewRegulationService(repo, zap.NewNop())
	ctx := context.Background()

	req := &request.UpsertCustomerTypeRegulationRequest{
		AdminID: uuid.New().String(),
		Rate:    1.5,
	}

	created, err := svc.UpsertCustomerTypeRegulation(ctx, "FOREIGN", req)
	require.NoError(t, err)
	assert.Equal(t, 1.5, created.Rate)

	fetched, err := svc.GetCustomerTypeRegulation(ctx, "FOREIGN")
	require.NoError(t, err)
	assert.Equal(t, 1.5, fetched.Rate)

	t.Run("unknown customer type", func(t *testing.T) {
		_, err := svc.UpsertCustomerTypeRegulation(ctx, "VIP", req)
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("missing regulation", func(t *testing.T) {
		_, err := svc.GetCustomerTypeRegulation(ctx, "DOMESTIC")
		assert.ErrorIs(t, err, entity.ErrUnknownRegulation)
	})
}
