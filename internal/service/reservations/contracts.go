package reservations

import (
	"context"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
)

// ReservationRepository reservation persistence access
type ReservationRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status domain.ReservationStatus) error
	Cancel(ctx context.Context, tenantID, id string, reason string) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
