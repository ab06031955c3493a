// pkg/autoconfig/match.go
package autoconfig

import (
	"math"

	"furnishing-engine/pkg/catalog"
)

// MatchRule selects the best-fit authored rule for the given inputs. The
// second return value is false when no rule fits; callers are expected to
// fall back to GenerateFallback.
//
// Square footage is the primary criterion because room count scales with
// footprint. Guest range is secondary and the matched rule's own capacity is
// re-verified before it is trusted, because authored rules can be
// mis-specified. When the sqft-filtered set has no exact guest match, no
// distance-based substitution across guest ranges is attempted: an
// under-capacity "closest" rule is worse than the explicit heuristic
// fallback.
func MatchRule(sqft, guestCount int, rules *catalog.AutoConfigRules) (catalog.BedroomMixRule, bool) {
	var bySqft []catalog.BedroomMixRule
	for _, r := range rules.BedroomMixRules {
		if sqft >= r.MinSqft && sqft <= r.MaxSqft {
			bySqft = append(bySqft, r)
		}
	}

	if len(bySqft) == 0 {
		rule, ok := closestByMidpoint(sqft, rules.BedroomMixRules)
		if !ok {
			return catalog.BedroomMixRule{}, false
		}
		if Capacity(rule.Bedrooms, rules) < guestCount {
			return catalog.BedroomMixRule{}, false
		}
		return rule, true
	}

	for _, r := range bySqft {
		if guestCount >= r.MinGuests && guestCount <= r.MaxGuests {
			if Capacity(r.Bedrooms, rules) < guestCount {
				return catalog.BedroomMixRule{}, false
			}
			return r, true
		}
	}

	return catalog.BedroomMixRule{}, false
}

// closestByMidpoint picks the rule whose sqft-range midpoint is numerically
// closest to sqft. Ties keep the earlier authored rule.
func closestByMidpoint(sqft int, rules []catalog.BedroomMixRule) (catalog.BedroomMixRule, bool) {
	if len(rules) == 0 {
		return catalog.BedroomMixRule{}, false
	}

	best := rules[0]
	bestDist := midpointDistance(sqft, rules[0])
	for _, r := range rules[1:] {
		if d := midpointDistance(sqft, r); d < bestDist {
			best = r
			bestDist = d
		}
	}
	return best, true
}

func midpointDistance(sqft int, r catalog.BedroomMixRule) float64 {
	mid := float64(r.MinSqft+r.MaxSqft) / 2
	return math.Abs(float64(sqft) - mid)
}
