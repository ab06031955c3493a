// pkg/autoconfig/orchestrator.go
package autoconfig

import (
	"furnishing-engine/internal/common/metrics"
	"furnishing-engine/pkg/catalog"
)

// ComputedConfiguration is the advisory output: a bedroom mix plus derived
// common-area sizes. It is recomputed fresh per input pair and never
// authoritative; the user may deviate from it freely.
type ComputedConfiguration struct {
	Bedrooms    catalog.BedroomMix `json:"bedrooms"`
	CommonAreas CommonAreas        `json:"commonAreas"`
	// RuleID carries the matched rule's id, empty when the bedroom mix was
	// heuristically generated.
	RuleID string `json:"ruleId,omitempty"`
}

// Compute produces a configuration for the given inputs. When a rule matches,
// bedrooms come from it; otherwise the heuristic fallback takes over. Common
// areas are derived either way, so a no-match degrades gracefully instead of
// suppressing advisory output. Deterministic: identical inputs yield
// identical output.
func Compute(sqft, guestCount int, rules *catalog.AutoConfigRules) ComputedConfiguration {
	areas := DeriveCommonAreas(sqft, rules)

	if rule, ok := MatchRule(sqft, guestCount, rules); ok {
		metrics.ConfigurationsComputed.WithLabelValues("rule").Inc()
		return ComputedConfiguration{
			Bedrooms:    rule.Bedrooms,
			CommonAreas: areas,
			RuleID:      rule.ID,
		}
	}

	metrics.ConfigurationsComputed.WithLabelValues("fallback").Inc()
	return ComputedConfiguration{
		Bedrooms:    GenerateFallback(sqft, guestCount, rules, DefaultFallbackConfig()),
		CommonAreas: areas,
	}
}
