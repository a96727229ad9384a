package interval

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking/internal/data/entity"
)

func span(t *testing.T, startDay, endDay int) Span {
	t.Helper()
	base := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
	s, err := NewSpan(base.AddDate(0, 0, startDay), base.AddDate(0, 0, endDay))
	require.NoError(t, err)
	return s
}

func TestNewSpan_RejectsNonPositiveDuration(t *testing.T) {
	at := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	_, err := NewSpan(at, at)
	assert.ErrorIs(t, err, entity.ErrInvalidInterval)

	_, err = NewSpan(at.Add(time.Hour), at)
	assert.ErrorIs(t, err, entity.ErrInvalidInterval)
}

func TestSpan_Nights(t *testing.T) {
	base := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	twoNights, _ := NewSpan(base, base.AddDate(0, 0, 2))
	assert.Equal(t, 2, twoNights.Nights())

	partial, _ := NewSpan(base, base.Add(30*time.Hour))
	assert.Equal(t, 2, partial.Nights(), "partial nights round up")

	short, _ := NewSpan(base, base.Add(3*time.Hour))
	assert.Equal(t, 1, short.Nights(), "minimum one night")
}

func TestIndex_InsertConflicts(t *testing.T) {
	idx := NewIndex()
	room := uuid.New()
	first := uuid.New()

	require.NoError(t, idx.Insert(room, span(t, 0, 2), first))

	err := idx.Insert(room, span(t, 1, 3), uuid.New())
	assert.ErrorIs(t, err, entity.ErrConflict)

	owner, ok := ConflictOwner(err)
	require.True(t, ok)
	assert.Equal(t, first, owner)

	// containment both ways
	assert.ErrorIs(t, idx.Insert(room, span(t, 0, 1), uuid.New()), entity.ErrConflict)
	assert.ErrorIs(t, idx.Insert(room, span(t, -1, 5), uuid.New()), entity.ErrConflict)
}

func TestIndex_TouchingEndpointsDoNotConflict(t *testing.T) {
	idx := NewIndex()
	room := uuid.New()

	require.NoError(t, idx.Insert(room, span(t, 2, 4), uuid.New()))
	assert.NoError(t, idx.Insert(room, span(t, 0, 2), uuid.New()))
	assert.NoError(t, idx.Insert(room, span(t, 4, 6), uuid.New()))
}

func TestIndex_RoomsAreIndependent(t *testing.T) {
	idx := NewIndex()

	require.NoError(t, idx.Insert(uuid.New(), span(t, 0, 3), uuid.New()))
	assert.NoError(t, idx.Insert(uuid.New(), span(t, 0, 3), uuid.New()))
}

func TestIndex_RemoveIsIdempotent(t *testing.T) {
	idx := NewIndex()
	room := uuid.New()
	owner := uuid.New()

	require.NoError(t, idx.Insert(room, span(t, 0, 2), owner))

	idx.Remove(room, owner)
	assert.True(t, idx.Free(room, span(t, 0, 2)))

	idx.Remove(room, owner)
	idx.Remove(uuid.New(), owner)
	assert.True(t, idx.Free(room, span(t, 0, 2)))
}

func TestIndex_Replace(t *testing.T) {
	idx := NewIndex()
	room := uuid.New()
	reservation := uuid.New()
	rental := uuid.New()

	require.NoError(t, idx.Insert(room, span(t, 0, 4), reservation))

	// replacing with a later start inside the old window succeeds
	require.NoError(t, idx.Replace(room, reservation, span(t, 1, 4), rental))
	assert.True(t, idx.Free(room, span(t, 0, 1)))

	conflicting, ok := idx.Conflicting(room, span(t, 1, 2))
	require.True(t, ok)
	assert.Equal(t, rental, conflicting)
}

func TestIndex_ReplaceRestoresOldSpanOnConflict(t *testing.T) {
	idx := NewIndex()
	room := uuid.New()
	reservation := uuid.New()
	neighbour := uuid.New()

	require.NoError(t, idx.Insert(room, span(t, 0, 2), reservation))
	require.NoError(t, idx.Insert(room, span(t, 2, 4), neighbour))

	err := idx.Replace(room, reservation, span(t, 0, 3), uuid.New())
	assert.ErrorIs(t, err, entity.ErrConflict)

	// reservation's original span must still be held
	conflicting, ok := idx.Conflicting(room, span(t, 0, 1))
	require.True(t, ok)
	assert.Equal(t, reservation, conflicting)
}

func TestIndex_FreeQuery(t *testing.T) {
	idx := NewIndex()
	room := uuid.New()

	require.NoError(t, idx.Insert(room, span(t, 2, 4), uuid.New()))

	assert.True(t, idx.Free(room, span(t, 0, 2)))
	assert.True(t, idx.Free(room, span(t, 4, 8)))
	assert.False(t, idx.Free(room, span(t, 3, 5)))
	assert.True(t, idx.Free(uuid.New(), span(t, 3, 5)))
}
