package find_availability

import "errors"

var (
	// ErrMissingTenant returned when the tenant identifier is absent.
	// Tenant identity is never inferred or defaulted.
	ErrMissingTenant = errors.New("find_availability: tenant id is required")

	// ErrInvalidDateRange returned when the requested range is empty or inverted
	ErrInvalidDateRange = errors.New("find_availability: invalid date range")

	// ErrInvalidInput returned on other malformed input
	ErrInvalidInput = errors.New("find_availability: invalid input data")

	// ErrInternal returned on internal usecase failures
	ErrInternal = errors.New("find_availability: internal error")
)
