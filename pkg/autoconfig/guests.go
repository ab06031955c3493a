// pkg/autoconfig/guests.go
package autoconfig

import "furnishing-engine/pkg/catalog"

// Defensive floors applied when the authored global bounds are zero or
// degenerate, so the allowed range is never empty.
const (
	defaultMinGuests = 1
	defaultMaxGuests = 20
)

// GuestRange is an inclusive guest-count range.
type GuestRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AllowedGuestRange returns the global guest bounds. Square footage is
// ignored on purpose: per-sqft legal-pair envelopes are advisory only and
// enforced nowhere but the matcher.
func AllowedGuestRange(rules *catalog.AutoConfigRules) GuestRange {
	min := rules.Validation.Global.MinGuests
	if min <= 0 {
		min = defaultMinGuests
	}

	max := rules.Validation.Global.MaxGuests
	if max <= 0 {
		max = defaultMaxGuests
	}
	if max < min {
		max = min
	}

	return GuestRange{Min: min, Max: max}
}

// ClampGuestCount clamps a desired guest count into the allowed range.
func ClampGuestCount(desired int, rules *catalog.AutoConfigRules) int {
	r := AllowedGuestRange(rules)
	if desired < r.Min {
		return r.Min
	}
	if desired > r.Max {
		return r.Max
	}
	return desired
}

// IsValidGuestCount reports whether a guest count lies within the allowed
// range, bounds inclusive.
func IsValidGuestCount(guestCount int, rules *catalog.AutoConfigRules) bool {
	r := AllowedGuestRange(rules)
	return guestCount >= r.Min && guestCount <= r.Max
}

// IsValidSqftGuestCombination checks both inputs against the global bounds.
// Zero sqft bounds are unconstrained. Per-rule sqft/guest envelopes are not
// consulted; whether an authored rule covers the pair is the matcher's
// business.
func IsValidSqftGuestCombination(sqft, guestCount int, rules *catalog.AutoConfigRules) bool {
	g := rules.Validation.Global
	if g.MinSqft > 0 && sqft < g.MinSqft {
		return false
	}
	if g.MaxSqft > 0 && sqft > g.MaxSqft {
		return false
	}
	return IsValidGuestCount(guestCount, rules)
}
