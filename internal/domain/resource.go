package domain

import "time"

// ResourceType concrete type of a bookable unit
type ResourceType string

const (
	TypeStandardSuite     ResourceType = "STANDARD_SUITE"
	TypeStandardPlusSuite ResourceType = "STANDARD_PLUS_SUITE"
	TypeVIPSuite          ResourceType = "VIP_SUITE"
	TypeKennel            ResourceType = "KENNEL"
	TypeRun               ResourceType = "RUN"
	TypeGroomingTable     ResourceType = "GROOMING_TABLE"
	TypeStaff             ResourceType = "STAFF"
)

// AllResourceTypes every concrete resource type known to the catalog
var AllResourceTypes = []ResourceType{
	TypeStandardSuite,
	TypeStandardPlusSuite,
	TypeVIPSuite,
	TypeKennel,
	TypeRun,
	TypeGroomingTable,
	TypeStaff,
}

// IsValidResourceType reports whether t is a known concrete type
func IsValidResourceType(t ResourceType) bool {
	for _, known := range AllResourceTypes {
		if known == t {
			return true
		}
	}
	return false
}

// Resource a bookable physical unit: a suite, kennel, run, grooming table
// or staff slot. Capacity is effectively 1 for boarding units; a resource
// holds at most one occupying reservation per interval regardless.
type Resource struct {
	ID       string
	TenantID string
	Type     ResourceType
	Name     string
	Number   int
	Capacity int
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
