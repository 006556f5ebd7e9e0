package update_reservation_status

import (
	"context"

	"github.com/pawhaven/PH-BoardingService/internal/service/reservations/models"
)

type ReservationsService interface {
	UpdateStatus(ctx context.Context, tenantID, id string, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
