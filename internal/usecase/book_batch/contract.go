package book_batch

import (
	"context"

	bookResource "github.com/pawhaven/PH-BoardingService/internal/usecase/book_resource"
	findAvailability "github.com/pawhaven/PH-BoardingService/internal/usecase/find_availability"
)

// AvailabilityFinder the availability query engine
type AvailabilityFinder interface {
	Execute(ctx context.Context, req *findAvailability.Request) (*findAvailability.Response, error)
}

// ResourceBooker the booking transaction coordinator
type ResourceBooker interface {
	Execute(ctx context.Context, req *bookResource.Request) (*bookResource.Response, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
