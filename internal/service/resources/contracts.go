package resources

import (
	"context"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
)

// ResourceRepository catalog read access
type ResourceRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*domain.Resource, error)
	ListActiveByTypes(ctx context.Context, tenantID string, types []domain.ResourceType) ([]*domain.Resource, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
