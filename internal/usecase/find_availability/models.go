package find_availability

import (
	"github.com/pawhaven/PH-BoardingService/internal/domain"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// Request availability query for a tenant, category and half-open date range
type Request struct {
	TenantID  string
	Category  string
	StartDate types.Date
	EndDate   types.Date

	// ExcludeResourceIDs removes specific resources from the candidate set
	// before the conflict check. The batch allocator uses this to keep
	// resources claimed earlier in the same batch out of later lookups.
	ExcludeResourceIDs []string
}

// AvailableResource summary of a free resource
type AvailableResource struct {
	ID     string
	Type   domain.ResourceType
	Name   string
	Number int
}

// Response list of resources free over the whole requested range,
// ordered by resource number. Advisory only: state can change between
// this read and a subsequent booking attempt.
type Response struct {
	TenantID  string
	Category  string
	StartDate types.Date
	EndDate   types.Date
	Resources []AvailableResource
}
