// pkg/autoconfig/capacity.go

// Package autoconfig recommends a furnishing configuration (bedroom mix and
// common-area sizes) for a property from its square footage and desired guest
// capacity. All functions are pure over an immutable ruleset.
package autoconfig

import "furnishing-engine/pkg/catalog"

// Sleeping capacity per bedroom type.
const (
	singleBedroomSleeps = 2
	doubleBedroomSleeps = 4
)

// Capacity returns the maximum sleeping capacity of a bedroom mix. A bunk
// size missing from the ruleset contributes zero.
func Capacity(mix catalog.BedroomMix, rules *catalog.AutoConfigRules) int {
	total := mix.Single*singleBedroomSleeps + mix.Double*doubleBedroomSleeps
	if mix.Bunk != catalog.BunkNone {
		total += rules.BunkCapacities[mix.Bunk]
	}
	return total
}
