package roomlock

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking/internal/data/entity"
)

func TestKeeper_AcquireAndRelease(t *testing.T) {
	keeper := NewKeeper(50 * time.Millisecond)
	room := uuid.New()

	release, err := keeper.Acquire(context.Background(), room)
	require.NoError(t, err)
	release()

	release, err = keeper.Acquire(context.Background(), room)
	require.NoError(t, err)
	release()
}

func TestKeeper_BusyOnContention(t *testing.T) {
	keeper := NewKeeper(50 * time.Millisecond)
	room := uuid.New()

	release, err := keeper.Acquire(context.Background(), room)
	require.NoError(t, err)
	defer release()

	_, err = keeper.Acquire(context.Background(), room)
	assert.ErrorIs(t, err, entity.ErrBusy)
}

func TestKeeper_RoomsDoNotContend(t *testing.T) {
	keeper := NewKeeper(50 * time.Millisecond)

	releaseA, err := keeper.Acquire(context.Background(), uuid.New())
	require.NoError(t, err)
	defer releaseA()

	releaseB, err := keeper.Acquire(context.Background(), uuid.New())
	require.NoError(t, err)
	defer releaseB()
}

func TestKeeper_CancelledContext(t *testing.T) {
	keeper := NewKeeper(time.Second)
	room := uuid.New()

	release, err := keeper.Acquire(context.Background(), room)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = keeper.Acquire(ctx, room)
	require.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrBusy)
}
