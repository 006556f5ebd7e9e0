package book_resource

import "errors"

var (
	// ErrMissingTenant returned when the tenant identifier is absent
	ErrMissingTenant = errors.New("book_resource: tenant id is required")

	// ErrInvalidInput returned on malformed input
	ErrInvalidInput = errors.New("book_resource: invalid input data")

	// ErrInvalidDateRange returned when the interval is empty or inverted
	ErrInvalidDateRange = errors.New("book_resource: invalid date range")

	// ErrResourceNotFound returned when the resource does not exist for the tenant
	ErrResourceNotFound = errors.New("book_resource: resource not found")

	// ErrResourceInactive returned when the resource is soft-disabled
	ErrResourceInactive = errors.New("book_resource: resource is not active")

	// ErrResourceConflict returned when an occupying reservation already
	// overlaps the requested interval on the resource. Safe to retry against
	// a different resource after re-querying availability; not safe to retry
	// blindly against the same one.
	ErrResourceConflict = errors.New("book_resource: resource already booked for interval")

	// ErrBookingTimeout returned when the per-resource lock or transaction
	// could not be acquired in bounded time. Safe to retry with backoff.
	ErrBookingTimeout = errors.New("book_resource: booking timed out, retry later")

	// ErrInternal returned on internal usecase failures
	ErrInternal = errors.New("book_resource: internal error")
)
