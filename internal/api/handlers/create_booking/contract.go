package create_booking

import (
	"context"

	bookResource "github.com/pawhaven/PH-BoardingService/internal/usecase/book_resource"
)

type BookResourceUseCase interface {
	Execute(ctx context.Context, req *bookResource.Request) (*bookResource.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
