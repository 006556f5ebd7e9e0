package book_resource

import (
	"time"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// Request booking request for one pet on one concrete resource
type Request struct {
	TenantID   string
	ResourceID string
	PetID      string
	CustomerID string
	ServiceID  string
	StartDate  types.Date
	EndDate    types.Date
	Notes      *string

	// Status the initial occupying status; empty defaults to CONFIRMED,
	// PENDING is accepted for hold-style bookings
	Status domain.ReservationStatus

	// ExternalID set when the reservation originates from a legacy import
	ExternalID *string
}

// Response the persisted reservation
type Response struct {
	ID         string
	TenantID   string
	CustomerID string
	PetID      string
	ResourceID string
	ServiceID  string
	StartDate  types.Date
	EndDate    types.Date
	Status     domain.ReservationStatus
	Notes      *string
	ExternalID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func fromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:         res.ID,
		TenantID:   res.TenantID,
		CustomerID: res.CustomerID,
		PetID:      res.PetID,
		ResourceID: res.ResourceID,
		ServiceID:  res.ServiceID,
		StartDate:  res.StartDate,
		EndDate:    res.EndDate,
		Status:     res.Status,
		Notes:      res.Notes,
		ExternalID: res.ExternalID,
		CreatedAt:  res.CreatedAt,
		UpdatedAt:  res.UpdatedAt,
	}
}
