package book_batch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
	bookResource "github.com/pawhaven/PH-BoardingService/internal/usecase/book_resource"
	findAvailability "github.com/pawhaven/PH-BoardingService/internal/usecase/find_availability"
)

// UseCase the multi-resource allocator: a thin loop over the booking
// coordinator that never assigns one concrete resource to two items of the
// same batch, even when their categories resolve to overlapping type sets.
//
// Failure policy: partial success. Every item books in its own transaction;
// items that fail are reported individually and earlier successes stand.
// Callers that need all-or-nothing cancel the succeeded reservations and
// resubmit.
type UseCase struct {
	finder AvailabilityFinder
	booker ResourceBooker
	logger Logger
}

// NewUseCase creates the batch allocator
func NewUseCase(finder AvailabilityFinder, booker ResourceBooker, logger Logger) *UseCase {
	return &UseCase{
		finder: finder,
		booker: booker,
		logger: logger,
	}
}

// Execute processes items in submission order. For each item the availability
// query runs with the resources claimed earlier in this batch excluded, the
// lowest-numbered free resource is chosen, and the coordinator books it.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookBatch: tenant=%s, items=%d", req.TenantID, len(req.Items))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookBatch: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		TenantID: req.TenantID,
		Results:  make([]ItemResult, 0, len(req.Items)),
	}

	// Resources claimed by earlier items of this batch; excluded from every
	// later availability lookup regardless of booking outcome timing.
	claimed := make([]string, 0, len(req.Items))

	for i, item := range req.Items {
		result := uc.processItem(ctx, req.TenantID, i, item, claimed)
		if result.Reservation != nil {
			claimed = append(claimed, result.Reservation.ResourceID)
			resp.Succeeded++
		} else {
			resp.Failed++
		}
		resp.Results = append(resp.Results, result)
	}

	uc.logger.Info("BookBatch: tenant=%s done, succeeded=%d, failed=%d",
		req.TenantID, resp.Succeeded, resp.Failed)

	return resp, nil
}

func (uc *UseCase) processItem(ctx context.Context, tenantID string, index int, item Item, claimed []string) ItemResult {
	if err := validateItem(&item); err != nil {
		uc.logger.Warn("BookBatch: item %d invalid: %v", index, err)
		return failedItem(index, FailureInvalid, err)
	}

	availability, err := uc.finder.Execute(ctx, &findAvailability.Request{
		TenantID:           tenantID,
		Category:           item.Category,
		StartDate:          item.StartDate,
		EndDate:            item.EndDate,
		ExcludeResourceIDs: claimed,
	})
	if err != nil {
		uc.logger.Error("BookBatch: item %d availability lookup failed: %v", index, err)
		return failedItem(index, FailureInternal, fmt.Errorf("%w: availability lookup: %v", ErrInternal, err))
	}

	if len(availability.Resources) == 0 {
		uc.logger.Warn("BookBatch: item %d has no available resource for category=%s", index, item.Category)
		return failedItem(index, FailureNoResource, ErrNoResourceAvailable)
	}

	// Candidates arrive ordered by resource number; the first one is the
	// deterministic choice, so identical batches allocate identically.
	chosen := availability.Resources[0]

	booked, err := uc.booker.Execute(ctx, &bookResource.Request{
		TenantID:   tenantID,
		ResourceID: chosen.ID,
		PetID:      item.PetID,
		CustomerID: item.CustomerID,
		ServiceID:  item.ServiceID,
		StartDate:  item.StartDate,
		EndDate:    item.EndDate,
		Notes:      item.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookResource.ErrResourceConflict):
			// Someone outside this batch won the resource between our
			// advisory read and the booking transaction.
			uc.logger.Warn("BookBatch: item %d lost resource %s to a concurrent booking", index, chosen.ID)
			return failedItem(index, FailureConflict, err)
		case errors.Is(err, bookResource.ErrBookingTimeout):
			return failedItem(index, FailureTimeout, err)
		default:
			uc.logger.Error("BookBatch: item %d booking failed: %v", index, err)
			return failedItem(index, FailureInternal, err)
		}
	}

	uc.logger.Info("BookBatch: item %d booked resource=%s reservation=%s", index, chosen.ID, booked.ID)
	return ItemResult{Index: index, Reservation: booked}
}

func failedItem(index int, code string, err error) ItemResult {
	return ItemResult{
		Index:       index,
		FailureCode: code,
		FailureMsg:  err.Error(),
	}
}

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TenantID) == "" {
		return ErrMissingTenant
	}
	if len(req.Items) == 0 {
		return ErrEmptyBatch
	}
	return nil
}

func validateItem(item *Item) error {
	if strings.TrimSpace(item.PetID) == "" {
		return fmt.Errorf("%w: petId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(item.CustomerID) == "" {
		return fmt.Errorf("%w: customerId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(item.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(item.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if err := domain.ValidateRange(item.StartDate, item.EndDate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
