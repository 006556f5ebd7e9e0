package get_availability

import (
	"context"

	findAvailability "github.com/pawhaven/PH-BoardingService/internal/usecase/find_availability"
)

type FindAvailabilityUseCase interface {
	Execute(ctx context.Context, req *findAvailability.Request) (*findAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
