package list_resources

import (
	"context"

	"github.com/pawhaven/PH-BoardingService/internal/service/resources"
)

type ResourcesService interface {
	ListByCategory(ctx context.Context, tenantID, category string) (*resources.ResourceListResponse, error)
	GetByID(ctx context.Context, tenantID, id string) (*resources.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
