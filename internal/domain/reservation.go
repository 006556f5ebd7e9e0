package domain

import (
	"time"

	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// ReservationStatus lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "PENDING"
	StatusConfirmed  ReservationStatus = "CONFIRMED"
	StatusCheckedIn  ReservationStatus = "CHECKED_IN"
	StatusCheckedOut ReservationStatus = "CHECKED_OUT"
	StatusCompleted  ReservationStatus = "COMPLETED"
	StatusCancelled  ReservationStatus = "CANCELLED"
	StatusNoShow     ReservationStatus = "NO_SHOW"
)

// OccupyingStatuses statuses that hold a resource and count toward conflict
// detection. PENDING occupies: an unconfirmed reservation still blocks the
// unit so it cannot be double-sold while awaiting confirmation.
var OccupyingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
}

// ReleasedStatuses statuses that free the resource for reuse in the same interval
var ReleasedStatuses = []ReservationStatus{
	StatusCheckedOut,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// IsValidStatus reports whether s is a known reservation status
func IsValidStatus(s ReservationStatus) bool {
	for _, known := range append(append([]ReservationStatus{}, OccupyingStatuses...), ReleasedStatuses...) {
		if known == s {
			return true
		}
	}
	return false
}

// Reservation holds one pet in one resource for a half-open [StartDate, EndDate)
// interval of calendar dates. ResourceID is never empty once persisted by the
// booking path; rows without a resource never reach an occupying status.
type Reservation struct {
	ID         string
	TenantID   string
	CustomerID string
	PetID      string
	ResourceID string
	ServiceID  string
	StartDate  types.Date
	EndDate    types.Date
	Status     ReservationStatus
	Notes      *string

	// ExternalID is set on reservations imported from a legacy operator
	// system; imported rows conflict-check exactly like native ones.
	ExternalID *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying reports whether the reservation currently holds its resource
func (r *Reservation) IsOccupying() bool {
	for _, s := range OccupyingStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

// CanBeCancelled reports whether the reservation may still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status change is a legal lifecycle move
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCheckedIn ||
			next == StatusCancelled || next == StatusNoShow
	case StatusConfirmed:
		return next == StatusCheckedIn || next == StatusCancelled || next == StatusNoShow
	case StatusCheckedIn:
		return next == StatusCheckedOut || next == StatusCompleted
	case StatusCheckedOut:
		return next == StatusCompleted
	default:
		// CANCELLED, NO_SHOW and COMPLETED are terminal
		return false
	}
}

// ReservationsFilter filter for listing a tenant's reservations.
// TenantID is required, everything else is optional.
type ReservationsFilter struct {
	TenantID        string
	ResourceID      *string
	ResourceIDs     []string
	CustomerID      *string
	PetID           *string
	StartDate       *types.Date
	EndDate         *types.Date
	Status          *ReservationStatus
	OnlyImported    bool
	IncludeReleased bool
}
