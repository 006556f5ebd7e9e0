package reservations

import "errors"

var (
	// ErrReservationNotFound returned when the reservation does not exist for the tenant
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrMissingTenant returned when the tenant identifier is absent
	ErrMissingTenant = errors.New("tenant id is required")

	// ErrCannotCancel returned when the reservation is past the point of cancellation
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidTransition returned when the requested status change is not a
	// legal lifecycle move from the current status
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput returned on malformed input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
