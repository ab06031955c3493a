// pkg/autoconfig/verify.go
package autoconfig

import (
	"fmt"
	"strings"

	"furnishing-engine/internal/common/errors"
	"furnishing-engine/pkg/catalog"
)

// VerifyRuleCapacities checks that every authored rule's own bedroom mix
// sleeps at least its max_guests. The matcher re-checks this per lookup;
// tooling runs this once so a mis-specified document is caught before it
// ships.
func VerifyRuleCapacities(rules *catalog.AutoConfigRules) error {
	var bad []string
	for _, r := range rules.BedroomMixRules {
		if c := Capacity(r.Bedrooms, rules); c < r.MaxGuests {
			bad = append(bad, fmt.Sprintf("rule %s sleeps %d of max_guests %d", r.ID, c, r.MaxGuests))
		}
	}
	if len(bad) > 0 {
		return errors.NewRulesInvalidError(strings.Join(bad, "; "))
	}
	return nil
}
