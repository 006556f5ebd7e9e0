package domain

import "strings"

// categoryAliases maps a normalized generic category onto its concrete
// subtypes. Alias expansion lives only here; query code must never union
// type literals by hand.
var categoryAliases = map[string][]ResourceType{
	"SUITE": {TypeStandardSuite, TypeStandardPlusSuite, TypeVIPSuite},
	"BOARDING": {
		TypeStandardSuite,
		TypeStandardPlusSuite,
		TypeVIPSuite,
		TypeKennel,
	},
}

// ResolveCategory maps a caller-supplied category string onto the set of
// concrete resource types satisfying it.
//
// A generic category ("suite") expands to every concrete subtype bearing
// that root. A concrete category ("STANDARD_SUITE") resolves to itself.
// Unknown categories resolve to an empty set, which callers must treat as
// "no matching resources" rather than an error.
func ResolveCategory(requested string) []ResourceType {
	normalized := normalizeCategory(requested)
	if normalized == "" {
		return nil
	}

	if subtypes, ok := categoryAliases[normalized]; ok {
		resolved := make([]ResourceType, len(subtypes))
		copy(resolved, subtypes)

		// A generic alias that also exists as a standalone concrete type
		// includes itself in the resolved set.
		if IsValidResourceType(ResourceType(normalized)) {
			resolved = append(resolved, ResourceType(normalized))
		}
		return resolved
	}

	if IsValidResourceType(ResourceType(normalized)) {
		return []ResourceType{ResourceType(normalized)}
	}

	return nil
}

// normalizeCategory upper-cases and converts separators, so "standard suite",
// "standard-suite" and "STANDARD_SUITE" all resolve identically
func normalizeCategory(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
