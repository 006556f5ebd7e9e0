package book_resource

import (
	"context"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// ResourceRepository catalog access; GetForUpdate takes the per-resource
// row lock that serializes concurrent booking attempts
type ResourceRepository interface {
	GetForUpdate(ctx context.Context, tenantID, id string) (*domain.Resource, error)
}

// ReservationRepository reservation persistence
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListOccupyingOverlapping(ctx context.Context, tenantID string, resourceIDs []string, start, end types.Date) ([]*domain.Reservation, error)
}

// TransactionManager serializable transaction boundary
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics booking outcome counters; optional, a nil collector is skipped
type Metrics interface {
	ObserveBookingAttempt(outcome string)
	ObserveBookingConflict(resourceType string)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
