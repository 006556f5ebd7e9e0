package create_booking

import (
	"time"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
	bookResource "github.com/pawhaven/PH-BoardingService/internal/usecase/book_resource"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ResourceID string  `json:"resourceId"`
	PetID      string  `json:"petId"`
	CustomerID string  `json:"customerId"`
	ServiceID  string  `json:"serviceId"`
	StartDate  string  `json:"startDate"` // "2026-03-10"
	EndDate    string  `json:"endDate"`   // "2026-03-14"
	Status     string  `json:"status,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	ExternalID *string `json:"externalId,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         string  `json:"id"`
	TenantID   string  `json:"tenantId"`
	CustomerID string  `json:"customerId"`
	PetID      string  `json:"petId"`
	ResourceID string  `json:"resourceId"`
	ServiceID  string  `json:"serviceId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
	ExternalID *string `json:"externalId,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model
func (r *CreateBookingRequest) ToUseCaseRequest(tenantID string) (*bookResource.Request, error) {
	start, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := types.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &bookResource.Request{
		TenantID:   tenantID,
		ResourceID: r.ResourceID,
		PetID:      r.PetID,
		CustomerID: r.CustomerID,
		ServiceID:  r.ServiceID,
		StartDate:  start,
		EndDate:    end,
		Status:     domain.ReservationStatus(r.Status),
		Notes:      r.Notes,
		ExternalID: r.ExternalID,
	}, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP model
func FromUseCaseResponse(resp *bookResource.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		TenantID:   resp.TenantID,
		CustomerID: resp.CustomerID,
		PetID:      resp.PetID,
		ResourceID: resp.ResourceID,
		ServiceID:  resp.ServiceID,
		StartDate:  resp.StartDate.String(),
		EndDate:    resp.EndDate.String(),
		Status:     string(resp.Status),
		Notes:      resp.Notes,
		ExternalID: resp.ExternalID,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
