package reservation

import "errors"

var (
	// ErrReservationNotFound returned when no reservation matches the id within the tenant
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrResourceOccupied returned when the exclusion constraint rejects an
	// insert because an occupying reservation already overlaps the interval
	// on that resource. The constraint is the database-level backstop behind
	// the coordinator's row-lock check.
	ErrResourceOccupied = errors.New("reservation.repository: resource already occupied for interval")

	// ErrBuildQuery returned when building the SQL statement failed
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery returned when executing the SQL statement failed
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow returned when scanning a result row failed
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
