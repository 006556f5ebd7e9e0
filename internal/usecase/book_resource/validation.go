package book_resource

import (
	"fmt"
	"strings"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
)

// validateRequest rejects malformed requests before any transaction starts
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TenantID) == "" {
		return ErrMissingTenant
	}
	if strings.TrimSpace(req.ResourceID) == "" {
		return fmt.Errorf("%w: resourceId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.PetID) == "" {
		return fmt.Errorf("%w: petId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerID) == "" {
		return fmt.Errorf("%w: customerId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if err := domain.ValidateRange(req.StartDate, req.EndDate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	if req.Status != "" && req.Status != domain.StatusPending && req.Status != domain.StatusConfirmed {
		return fmt.Errorf("%w: initial status must be PENDING or CONFIRMED", ErrInvalidInput)
	}

	return nil
}
