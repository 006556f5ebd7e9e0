package resources

import "errors"

var (
	// ErrResourceNotFound returned when the resource does not exist for the tenant
	ErrResourceNotFound = errors.New("resource not found")

	// ErrMissingTenant returned when the tenant identifier is absent
	ErrMissingTenant = errors.New("tenant id is required")

	// ErrInternal returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
