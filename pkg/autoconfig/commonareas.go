// pkg/autoconfig/commonareas.go
package autoconfig

import "furnishing-engine/pkg/catalog"

// CommonAreas holds the derived presence/size of each shared space.
type CommonAreas struct {
	Kitchen catalog.CommonSize `json:"kitchen"`
	Dining  catalog.CommonSize `json:"dining"`
	Living  catalog.CommonSize `json:"living"`
	RecRoom catalog.CommonSize `json:"recRoom"`
}

// DeriveCommonAreas computes every common area from square footage alone.
// Guest count never gates common-area thresholds.
func DeriveCommonAreas(sqft int, rules *catalog.AutoConfigRules) CommonAreas {
	return CommonAreas{
		Kitchen: deriveArea(sqft, rules.CommonAreaRules, catalog.AreaKitchen),
		Dining:  deriveArea(sqft, rules.CommonAreaRules, catalog.AreaDining),
		Living:  deriveArea(sqft, rules.CommonAreaRules, catalog.AreaLiving),
		RecRoom: deriveArea(sqft, rules.CommonAreaRules, catalog.AreaRecRoom),
	}
}

func deriveArea(sqft int, areaRules map[string]catalog.CommonAreaRule, key string) catalog.CommonSize {
	rule, ok := areaRules[key]
	if !ok {
		return catalog.SizeNone
	}

	// Absent presence threshold means never present by that criterion.
	present := rule.Presence != nil &&
		rule.Presence.PresentIfSqftGte != nil &&
		sqft >= *rule.Presence.PresentIfSqftGte
	if !present {
		return defaultSize(rule)
	}

	// First matching threshold wins; authoring order is preserved so later,
	// broader thresholds act as catch-alls.
	for _, t := range rule.Thresholds {
		if t.MinSqft != nil && sqft < *t.MinSqft {
			continue
		}
		if t.MaxSqft != nil && sqft > *t.MaxSqft {
			continue
		}
		return t.Size
	}

	return defaultSize(rule)
}

func defaultSize(rule catalog.CommonAreaRule) catalog.CommonSize {
	if rule.Default == "" {
		return catalog.SizeNone
	}
	return rule.Default
}
