// Package drugdomain holds the drug reference rules checked in application
// code.
package drugdomain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tripsit/tripsit-api/internal/domain"
)

// NameDefault is the part of a drug name the default check looks at.
type NameDefault struct {
	ID        uuid.UUID
	IsDefault bool
}

// ValidateSingleDefault requires exactly one default among a drug's names.
func ValidateSingleDefault(names []NameDefault) error {
	var defaults int
	for _, n := range names {
		if n.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		return domain.Invalidf("isDefault", "drug must have exactly one default name, found %d", defaults)
	}
	return nil
}

// Range is one min/max pair of a ROA duration. Either bound may be unknown.
type Range struct {
	Field string
	Min   *float64
	Max   *float64
}

// ValidateRoaRanges rejects negative values and pairs whose min exceeds max.
func ValidateRoaRanges(ranges ...Range) error {
	for _, r := range ranges {
		if r.Min != nil && *r.Min < 0 {
			return domain.Invalidf(r.Field+"Min", "%sMin cannot be negative", r.Field)
		}
		if r.Max != nil && *r.Max < 0 {
			return domain.Invalidf(r.Field+"Max", "%sMax cannot be negative", r.Field)
		}
		if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
			return domain.NewValidationError(r.Field,
				fmt.Sprintf("%sMin (%g) cannot exceed %sMax (%g)", r.Field, *r.Min, r.Field, *r.Max))
		}
	}
	return nil
}

// ValidateDoses rejects negative dose values.
func ValidateDoses(doses map[string]*float64) error {
	for field, v := range doses {
		if v != nil && *v < 0 {
			return domain.Invalidf(field, "%s cannot be negative", field)
		}
	}
	return nil
}
