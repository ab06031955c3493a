// pkg/autoconfig/fallback.go
package autoconfig

import (
	"sort"

	"furnishing-engine/pkg/catalog"
)

// FallbackConfig holds the tunable thresholds of the heuristic generator.
// The defaults were tuned empirically, not derived; treat them as parameters
// rather than invariants.
type FallbackConfig struct {
	// LargeHomeSqft is the footprint at which double bedrooms become
	// available to the heuristic.
	LargeHomeSqft int
	// LargePartyGuests is the party size at which double bedrooms become
	// available regardless of footprint.
	LargePartyGuests int
	// MinDoubleBatch is the smallest leftover guest count worth a double
	// bedroom; below it, leftovers go to singles.
	MinDoubleBatch int
}

// DefaultFallbackConfig returns the standard heuristic thresholds.
func DefaultFallbackConfig() FallbackConfig {
	return FallbackConfig{
		LargeHomeSqft:    3000,
		LargePartyGuests: 18,
		MinDoubleBatch:   4,
	}
}

// GenerateFallback synthesizes a bedroom mix when no authored rule covers the
// inputs. It always succeeds, and its output always sleeps at least
// guestCount.
func GenerateFallback(sqft, guestCount int, rules *catalog.AutoConfigRules, cfg FallbackConfig) catalog.BedroomMix {
	var mix catalog.BedroomMix

	if guestCount >= 4 {
		mix.Single = 2
	}
	remaining := guestCount - mix.Single*singleBedroomSleeps
	if remaining < 0 {
		remaining = 0
	}

	if remaining > 0 {
		if bunk, bunkCap := pickBunk(remaining, rules.BunkCapacities); bunk != catalog.BunkNone {
			mix.Bunk = bunk
			remaining -= bunkCap
			if remaining < 0 {
				remaining = 0
			}
		}
	}

	doublesAllowed := sqft >= cfg.LargeHomeSqft || guestCount >= cfg.LargePartyGuests
	if doublesAllowed && remaining >= cfg.MinDoubleBatch {
		mix.Double = ceilDiv(remaining, doubleBedroomSleeps)
		remaining = 0
	}

	if remaining > 0 {
		mix.Single += ceilDiv(remaining, singleBedroomSleeps)
	}

	return mix
}

// pickBunk chooses the smallest bunk size whose capacity covers remaining,
// or the largest available bunk when none is big enough.
func pickBunk(remaining int, capacities map[catalog.BunkSize]int) (catalog.BunkSize, int) {
	type bunk struct {
		size     catalog.BunkSize
		capacity int
	}

	var candidates []bunk
	for size, c := range capacities {
		if c > 0 {
			candidates = append(candidates, bunk{size, c})
		}
	}
	if len(candidates) == 0 {
		return catalog.BunkNone, 0
	}

	// Deterministic order: by capacity, then by name for equal capacities.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].capacity != candidates[j].capacity {
			return candidates[i].capacity < candidates[j].capacity
		}
		return candidates[i].size < candidates[j].size
	})

	for _, c := range candidates {
		if c.capacity >= remaining {
			return c.size, c.capacity
		}
	}
	largest := candidates[len(candidates)-1]
	return largest.size, largest.capacity
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
