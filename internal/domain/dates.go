package domain

import (
	"errors"

	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// ErrInvalidDateRange returned when a range does not satisfy start < end
var ErrInvalidDateRange = errors.New("domain: start date must be before end date")

// Overlaps reports whether two half-open [start, end) date intervals
// conflict. Touching boundaries do not overlap: a reservation ending on
// day N and another starting on day N can share the resource, which is
// what allows same-day turnover of a unit.
func Overlaps(aStart, aEnd, bStart, bEnd types.Date) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ValidateRange rejects empty and inverted intervals before any query runs
func ValidateRange(start, end types.Date) error {
	if start.IsZero() || end.IsZero() {
		return ErrInvalidDateRange
	}
	if !start.Before(end) {
		return ErrInvalidDateRange
	}
	return nil
}
