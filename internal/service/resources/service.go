package resources

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
	resourceRepo "github.com/pawhaven/PH-BoardingService/internal/infra/storage/resource"
)

// ResourceResponse resource catalog entry returned to callers
type ResourceResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Number    int       `json:"number"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResourceListResponse list of catalog entries
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// Service read access to the resource catalog. The booking engine treats the
// catalog as read-only; administrative CRUD lives in another system.
type Service struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService creates a resources service
func NewService(resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// GetByID fetches a catalog entry, scoped and verified by tenant
func (s *Service) GetByID(ctx context.Context, tenantID, id string) (*ResourceResponse, error) {
	s.logger.Info("GetByID: tenant=%s, resource=%s", tenantID, id)

	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrMissingTenant
	}

	resource, err := s.resourceRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("GetByID: resource %s not found for tenant %s", id, tenantID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetByID: repository error for resource %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return fromDomain(resource), nil
}

// ListByCategory lists a tenant's active resources for a category. An empty
// category lists every type; an unknown category yields an empty list,
// matching the availability engine.
func (s *Service) ListByCategory(ctx context.Context, tenantID, category string) (*ResourceListResponse, error) {
	s.logger.Info("ListByCategory: tenant=%s, category=%s", tenantID, category)

	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrMissingTenant
	}

	resolved := domain.AllResourceTypes
	if strings.TrimSpace(category) != "" {
		resolved = domain.ResolveCategory(category)
	}
	resources, err := s.resourceRepo.ListActiveByTypes(ctx, tenantID, resolved)
	if err != nil {
		s.logger.Error("ListByCategory: repository error for tenant %s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: ListByCategory - repository error: %v", ErrInternal, err)
	}

	out := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, *fromDomain(r))
	}

	return &ResourceListResponse{Resources: out}, nil
}

func fromDomain(r *domain.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:        r.ID,
		TenantID:  r.TenantID,
		Type:      string(r.Type),
		Name:      r.Name,
		Number:    r.Number,
		Capacity:  r.Capacity,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
