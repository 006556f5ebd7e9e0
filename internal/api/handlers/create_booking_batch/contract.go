package create_booking_batch

import (
	"context"

	bookBatch "github.com/pawhaven/PH-BoardingService/internal/usecase/book_batch"
)

type BookBatchUseCase interface {
	Execute(ctx context.Context, req *bookBatch.Request) (*bookBatch.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
