package get_availability

import (
	findAvailability "github.com/pawhaven/PH-BoardingService/internal/usecase/find_availability"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// ResourceSummary one free resource in the availability response
type ResourceSummary struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	TenantID  string            `json:"tenantId"`
	Category  string            `json:"category"`
	StartDate string            `json:"startDate"`
	EndDate   string            `json:"endDate"`
	Resources []ResourceSummary `json:"resources"`
}

// ToUseCaseRequest parses query values into the usecase request
func ToUseCaseRequest(tenantID, category, startStr, endStr string) (*findAvailability.Request, error) {
	start, err := types.ParseDate(startStr)
	if err != nil {
		return nil, err
	}

	end, err := types.ParseDate(endStr)
	if err != nil {
		return nil, err
	}

	return &findAvailability.Request{
		TenantID:  tenantID,
		Category:  category,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP model
func FromUseCaseResponse(resp *findAvailability.Response) *AvailabilityResponse {
	resources := make([]ResourceSummary, 0, len(resp.Resources))
	for _, r := range resp.Resources {
		resources = append(resources, ResourceSummary{
			ID:     r.ID,
			Type:   string(r.Type),
			Name:   r.Name,
			Number: r.Number,
		})
	}

	return &AvailabilityResponse{
		TenantID:  resp.TenantID,
		Category:  resp.Category,
		StartDate: resp.StartDate.String(),
		EndDate:   resp.EndDate.String(),
		Resources: resources,
	}
}
