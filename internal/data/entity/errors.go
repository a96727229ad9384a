package entity

import "errors"

var (
	// ErrConflict is returned when a requested interval overlaps an
	// existing booking for the same room.
	ErrConflict = errors.New("room interval conflict")

	// ErrInvalidInterval is returned for non-positive stay durations.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrValidation is returned for malformed request payloads.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownRegulation is returned when no active pricing rule
	// exists for a room type or customer type.
	ErrUnknownRegulation = errors.New("unknown regulation")

	ErrNotFound         = errors.New("not found")
	ErrAlreadyCheckedIn = errors.New("reservation already checked in")
	ErrAlreadyPaid      = errors.New("rental already paid")

	// ErrBusy is returned when the per-room lock cannot be acquired
	// within the configured wait. Callers may retry.
	ErrBusy = errors.New("room busy, try again")

	// ErrStorage wraps persistence failures after in-memory state has
	// been rolled back. Transient from the caller's point of view.
	ErrStorage = errors.New("storage failure")
)
