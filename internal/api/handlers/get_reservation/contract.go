package get_reservation

import (
	"context"

	"github.com/pawhaven/PH-BoardingService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByID(ctx context.Context, tenantID, id string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
