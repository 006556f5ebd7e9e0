package models

import (
	"errors"
	"time"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

var (
	// ErrInvalidStatus returned for an unknown reservation status string
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request models

// CancelReservationRequest cancellation with an operator-supplied reason
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest lifecycle transition request (check-in, check-out, ...)
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListReservationsRequest tenant-scoped listing with optional filters
type ListReservationsRequest struct {
	TenantID        string
	ResourceID      *string
	CustomerID      *string
	PetID           *string
	StartDate       *types.Date
	EndDate         *types.Date
	Status          *string
	OnlyImported    bool
	IncludeReleased bool
}

// ToDomainFilter converts the request into the repository filter
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		TenantID:        r.TenantID,
		ResourceID:      r.ResourceID,
		CustomerID:      r.CustomerID,
		PetID:           r.PetID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		OnlyImported:    r.OnlyImported,
		IncludeReleased: r.IncludeReleased,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// ReservationResponse reservation data returned to callers
type ReservationResponse struct {
	ID         string  `json:"id"`
	TenantID   string  `json:"tenantId"`
	CustomerID string  `json:"customerId"`
	PetID      string  `json:"petId"`
	ResourceID string  `json:"resourceId"`
	ServiceID  string  `json:"serviceId"`
	StartDate  string  `json:"startDate"` // "2026-03-10"
	EndDate    string  `json:"endDate"`   // "2026-03-14"
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
	ExternalID *string `json:"externalId,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse list of reservations
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Conversion helpers

// FromDomainReservation converts a domain model to the response DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		TenantID:           r.TenantID,
		CustomerID:         r.CustomerID,
		PetID:              r.PetID,
		ResourceID:         r.ResourceID,
		ServiceID:          r.ServiceID,
		StartDate:          r.StartDate.String(),
		EndDate:            r.EndDate.String(),
		Status:             string(r.Status),
		Notes:              r.Notes,
		ExternalID:         r.ExternalID,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		formatted := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &formatted
	}

	return resp
}

// FromDomainReservationList converts a slice of domain models
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: out}
}

// ToDomainStatus validates and converts a status string
func ToDomainStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}
