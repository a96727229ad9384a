package roomlock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"hotel-booking/internal/data/entity"
)

// Keeper hands out one mutual-exclusion lock per room so that the
// check-availability / insert-interval / persist sequence is serialized
// per room. Waiting is bounded: a caller that cannot acquire the lock
// within maxWait gets entity.ErrBusy and may retry.
type Keeper struct {
	mu      sync.Mutex
	maxWait time.Duration
	locks   map[uuid.UUID]*semaphore.Weighted
}

func NewKeeper(maxWait time.Duration) *Keeper {
	if maxWait <= 0 {
		maxWait = 3 * time.Second
	}
	return &Keeper{
		maxWait: maxWait,
		locks:   make(map[uuid.UUID]*semaphore.Weighted),
	}
}

func (k *Keeper) lockFor(roomID uuid.UUID) *semaphore.Weighted {
	k.mu.Lock()
	defer k.mu.Unlock()

	sem, ok := k.locks[roomID]
	if !ok {
		sem = semaphore.NewWeighted(1)
		k.locks[roomID] = sem
	}
	return sem
}

// Acquire takes the lock for roomID, waiting at most the configured
// bound. The returned release function must be called on every exit
// path.
func (k *Keeper) Acquire(ctx context.Context, roomID uuid.UUID) (func(), error) {
	sem := k.lockFor(roomID)

	waitCtx, cancel := context.WithTimeout(ctx, k.maxWait)
	defer cancel()

	if err := sem.Acquire(waitCtx, 1); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("room %s lock wait exceeded %s: %w", roomID, k.maxWait, entity.ErrBusy)
		}
		return nil, fmt.Errorf("acquire room %s lock: %w", roomID, err)
	}

	return func() { sem.Release(1) }, nil
}
