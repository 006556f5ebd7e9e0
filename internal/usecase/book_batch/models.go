package book_batch

import (
	bookResource "github.com/pawhaven/PH-BoardingService/internal/usecase/book_resource"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// Item one booking request within a batch: a pet, a desired category and a range
type Item struct {
	PetID      string
	CustomerID string
	ServiceID  string
	Category   string
	StartDate  types.Date
	EndDate    types.Date
	Notes      *string
}

// Request a batch of booking requests submitted together, e.g. one order
// covering several pets. Items are processed in submission order.
type Request struct {
	TenantID string
	Items    []Item
}

// ItemResult outcome for one batch item. Exactly one of Reservation and
// FailureCode is set.
type ItemResult struct {
	Index       int
	Reservation *bookResource.Response
	FailureCode string
	FailureMsg  string
}

// Failure codes reported per item
const (
	FailureNoResource = "NO_RESOURCE_AVAILABLE"
	FailureConflict   = "CONFLICT"
	FailureTimeout    = "TIMEOUT"
	FailureInvalid    = "INVALID_ITEM"
	FailureInternal   = "INTERNAL"
)

// Response per-item outcomes under the partial-success policy: items that
// booked stay booked, failed items are reported individually.
type Response struct {
	TenantID  string
	Results   []ItemResult
	Succeeded int
	Failed    int
}
