package interval

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"hotel-booking/internal/data/entity"
)

// ConflictError reports which booking unit occupies the requested span.
type ConflictError struct {
	Owner uuid.UUID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("interval owned by booking %s: %s", e.Owner, entity.ErrConflict)
}

func (e *ConflictError) Unwrap() error {
	return entity.ErrConflict
}

// ConflictOwner extracts the conflicting booking unit id from err, if any.
func ConflictOwner(err error) (uuid.UUID, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Owner, true
	}
	return uuid.Nil, false
}

type slot struct {
	span  Span
	owner uuid.UUID
}

// Index keeps, per room, the occupied intervals tagged with the owning
// booking unit (reservation or rental id). Slots are ordered by start
// time so overlap checks only touch neighbouring candidates.
//
// The index itself is safe for concurrent use, but check-then-insert
// sequences must additionally be serialized per room by the caller.
type Index struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID][]slot
}

func NewIndex() *Index {
	return &Index{rooms: make(map[uuid.UUID][]slot)}
}

// Insert adds span for roomID owned by owner. It fails with a
// ConflictError when span overlaps any stored interval for the room.
func (i *Index) Insert(roomID uuid.UUID, span Span, owner uuid.UUID) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.insertLocked(roomID, span, owner)
}

func (i *Index) insertLocked(roomID uuid.UUID, span Span, owner uuid.UUID) error {
	slots := i.rooms[roomID]

	if conflicting, ok := overlapping(slots, span); ok {
		return &ConflictError{Owner: conflicting}
	}

	at := sort.Search(len(slots), func(n int) bool {
		return !slots[n].span.Start.Before(span.Start)
	})

	slots = append(slots, slot{})
	copy(slots[at+1:], slots[at:])
	slots[at] = slot{span: span, owner: owner}
	i.rooms[roomID] = slots

	return nil
}

// Remove deletes the interval owned by owner for roomID. Removing an
// absent owner is a no-op.
func (i *Index) Remove(roomID, owner uuid.UUID) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.removeLocked(roomID, owner)
}

func (i *Index) removeLocked(roomID, owner uuid.UUID) (Span, bool) {
	slots := i.rooms[roomID]
	for n, s := range slots {
		if s.owner == owner {
			i.rooms[roomID] = append(slots[:n], slots[n+1:]...)
			return s.span, true
		}
	}
	return Span{}, false
}

// Replace swaps the interval owned by oldOwner for span owned by
// newOwner in one step. If the new span conflicts with any remaining
// interval the old one is restored and a ConflictError returned.
func (i *Index) Replace(roomID, oldOwner uuid.UUID, span Span, newOwner uuid.UUID) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	old, had := i.removeLocked(roomID, oldOwner)

	if err := i.insertLocked(roomID, span, newOwner); err != nil {
		if had {
			// old span cannot conflict, it was just removed
			_ = i.insertLocked(roomID, old, oldOwner)
		}
		return err
	}
	return nil
}

// Free reports whether no stored interval for roomID overlaps span.
func (i *Index) Free(roomID uuid.UUID, span Span) bool {
	_, occupied := i.Conflicting(roomID, span)
	return !occupied
}

// Conflicting returns the owner of the first stored interval for roomID
// overlapping span.
func (i *Index) Conflicting(roomID uuid.UUID, span Span) (uuid.UUID, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return overlapping(i.rooms[roomID], span)
}

// overlapping scans the ordered slots around span's position. The slot
// starting before span may still reach into it, and every slot starting
// inside [span.Start, span.End) overlaps by definition.
func overlapping(slots []slot, span Span) (uuid.UUID, bool) {
	at := sort.Search(len(slots), func(n int) bool {
		return !slots[n].span.Start.Before(span.Start)
	})

	if at > 0 && slots[at-1].span.End.After(span.Start) {
		return slots[at-1].owner, true
	}
	if at < len(slots) && slots[at].span.Start.Before(span.End) {
		return slots[at].owner, true
	}
	return uuid.Nil, false
}
