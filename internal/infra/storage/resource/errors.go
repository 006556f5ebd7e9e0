package resource

import "errors"

var (
	// ErrResourceNotFound returned when no resource matches the id within the tenant
	ErrResourceNotFound = errors.New("resource.repository: resource not found")

	// ErrBuildQuery returned when building the SQL statement failed
	ErrBuildQuery = errors.New("resource.repository: failed to build query")

	// ErrExecQuery returned when executing the SQL statement failed
	ErrExecQuery = errors.New("resource.repository: failed to execute query")

	// ErrScanRow returned when scanning a result row failed
	ErrScanRow = errors.New("resource.repository: failed to scan row")
)
