package drugdomain

import (
	"strings"

	"github.com/tripsit/tripsit-api/internal/domain"
)

// NameType classifies a drug name.
type NameType string

const (
	NameBrand        NameType = "BRAND"
	NameCommon       NameType = "COMMON"
	NameSubstitutive NameType = "SUBSTITUTIVE"
	NameSystematic   NameType = "SYSTEMATIC"
)

var NameTypes = []NameType{NameBrand, NameCommon, NameSubstitutive, NameSystematic}

func (t NameType) IsValid() bool {
	switch t {
	case NameBrand, NameCommon, NameSubstitutive, NameSystematic:
		return true
	default:
		return false
	}
}

func (t NameType) String() string { return string(t) }

func ParseNameType(s string) (NameType, error) {
	t := NameType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", domain.Invalidf("type", "unknown drug name type %q", s)
	}
	return t, nil
}

// Route is a route of administration.
type Route string

const (
	RouteOral          Route = "ORAL"
	RouteInsufflated   Route = "INSUFFLATED"
	RouteInhaled       Route = "INHALED"
	RouteTopical       Route = "TOPICAL"
	RouteSublingual    Route = "SUBLINGUAL"
	RouteBuccal        Route = "BUCCAL"
	RouteRectal        Route = "RECTAL"
	RouteIntramuscular Route = "INTRAMUSCULAR"
	RouteIntravenous   Route = "INTRAVENOUS"
	// RouteSubcutaneous keeps the stored spelling of the enum member.
	RouteSubcutaneous Route = "SUBCUTANIOUS"
	RouteTransdermal  Route = "TRANSDERMAL"
)

var Routes = []Route{
	RouteOral, RouteInsufflated, RouteInhaled, RouteTopical, RouteSublingual, RouteBuccal,
	RouteRectal, RouteIntramuscular, RouteIntravenous, RouteSubcutaneous, RouteTransdermal,
}

func (r Route) IsValid() bool {
	for _, v := range Routes {
		if r == v {
			return true
		}
	}
	return false
}

func (r Route) String() string { return string(r) }

func ParseRoute(s string) (Route, error) {
	r := Route(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", domain.Invalidf("route", "unknown route of administration %q", s)
	}
	return r, nil
}

// CategoryType groups drug categories.
type CategoryType string

const (
	CategoryCommon       CategoryType = "COMMON"
	CategoryPsychoactive CategoryType = "PSYCHOACTIVE"
	CategoryChemical     CategoryType = "CHEMICAL"
)

var CategoryTypes = []CategoryType{CategoryCommon, CategoryPsychoactive, CategoryChemical}

func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryCommon, CategoryPsychoactive, CategoryChemical:
		return true
	default:
		return false
	}
}

func (t CategoryType) String() string { return string(t) }

func ParseCategoryType(s string) (CategoryType, error) {
	t := CategoryType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", domain.Invalidf("type", "unknown drug category type %q", s)
	}
	return t, nil
}

func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
