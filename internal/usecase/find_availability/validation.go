package find_availability

import (
	"fmt"
	"strings"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
)

// validateRequest rejects malformed requests before any query executes
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TenantID) == "" {
		return ErrMissingTenant
	}

	if strings.TrimSpace(req.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	if err := domain.ValidateRange(req.StartDate, req.EndDate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	return nil
}
