package find_availability

import (
	"context"
	"fmt"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
)

// UseCase the availability query engine: a pure read with no locking.
// The result is a hint, not a guarantee; the booking coordinator re-verifies
// under its transaction before anything is persisted.
type UseCase struct {
	resourceRepo    ResourceRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase creates the availability usecase
func NewUseCase(
	resourceRepo ResourceRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo:    resourceRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute resolves the category, loads the tenant's active candidates and
// subtracts every resource holding an occupying reservation that overlaps
// the requested [start, end) range.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailability: tenant=%s, category=%s, range=%s..%s",
		req.TenantID, req.Category, req.StartDate, req.EndDate)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailability: validation failed: %v", err)
		return nil, err
	}

	resolvedTypes := domain.ResolveCategory(req.Category)
	if len(resolvedTypes) == 0 {
		// Unknown category means no matching resources, never "everything"
		uc.logger.Info("FindAvailability: category %q resolved to no types", req.Category)
		return uc.emptyResponse(req), nil
	}

	candidates, err := uc.resourceRepo.ListActiveByTypes(ctx, req.TenantID, resolvedTypes)
	if err != nil {
		uc.logger.Error("FindAvailability: failed to list resources: %v", err)
		return nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
	}

	candidates = excludeResources(candidates, req.ExcludeResourceIDs)
	if len(candidates) == 0 {
		return uc.emptyResponse(req), nil
	}

	candidateIDs := make([]string, len(candidates))
	for i, res := range candidates {
		candidateIDs[i] = res.ID
	}

	conflicts, err := uc.reservationRepo.ListOccupyingOverlapping(ctx, req.TenantID, candidateIDs, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("FindAvailability: failed to load overlapping reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load overlapping reservations: %v", ErrInternal, err)
	}

	occupied := make(map[string]struct{}, len(conflicts))
	for _, res := range conflicts {
		occupied[res.ResourceID] = struct{}{}
	}

	available := make([]AvailableResource, 0, len(candidates))
	for _, res := range candidates {
		if _, taken := occupied[res.ID]; taken {
			continue
		}
		available = append(available, AvailableResource{
			ID:     res.ID,
			Type:   res.Type,
			Name:   res.Name,
			Number: res.Number,
		})
	}

	uc.logger.Info("FindAvailability: tenant=%s, %d of %d candidates available",
		req.TenantID, len(available), len(candidates))

	return &Response{
		TenantID:  req.TenantID,
		Category:  req.Category,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Resources: available,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		TenantID:  req.TenantID,
		Category:  req.Category,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Resources: []AvailableResource{},
	}
}

func excludeResources(candidates []*domain.Resource, excludeIDs []string) []*domain.Resource {
	if len(excludeIDs) == 0 {
		return candidates
	}

	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	kept := make([]*domain.Resource, 0, len(candidates))
	for _, res := range candidates {
		if _, skip := excluded[res.ID]; skip {
			continue
		}
		kept = append(kept, res)
	}
	return kept
}
