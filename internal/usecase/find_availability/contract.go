package find_availability

import (
	"context"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// ResourceRepository catalog read access
type ResourceRepository interface {
	ListActiveByTypes(ctx context.Context, tenantID string, types []domain.ResourceType) ([]*domain.Resource, error)
}

// ReservationRepository conflict query access
type ReservationRepository interface {
	ListOccupyingOverlapping(ctx context.Context, tenantID string, resourceIDs []string, start, end types.Date) ([]*domain.Reservation, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
