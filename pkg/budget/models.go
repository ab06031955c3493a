// pkg/budget/models.go

// Package budget rolls per-item multi-tier prices up into room breakdowns,
// contingency-adjusted totals and a headline display range, optionally
// extended with project add-ons. Monetary values are integer minor units.
package budget

import (
	"furnishing-engine/internal/common/logger"
	"furnishing-engine/pkg/catalog"
)

// TierAmounts holds one monetary amount per quality tier.
type TierAmounts struct {
	Low     int64 `json:"low"`
	Mid     int64 `json:"mid"`
	MidHigh int64 `json:"midHigh"`
	High    int64 `json:"high"`
}

// TierTotal is a tier subtotal with its contingency buffer applied.
type TierTotal struct {
	Subtotal    int64 `json:"subtotal"`
	Contingency int64 `json:"contingency"`
	Total       int64 `json:"total"`
}

// RoomBreakdown is the per-room contribution to the estimate.
type RoomBreakdown struct {
	RoomType string      `json:"roomType"`
	RoomSize string      `json:"roomSize"`
	Quantity int         `json:"quantity"`
	Tiers    TierAmounts `json:"tiers"`
}

// Diagnostic records a recoverable aggregation problem, such as a selection
// referencing a stale catalog id. Diagnosed contributions degrade to zero;
// they never abort the estimate.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Ref     string `json:"ref,omitempty"`
}

// Budget is the furnishings estimate across all four tiers. RangeLow and
// RangeHigh are the low and mid tier totals; the headline range spans
// low/mid, never low/high.
type Budget struct {
	EstimateID    string          `json:"estimateId"`
	RoomBreakdown []RoomBreakdown `json:"roomBreakdown"`
	Low           TierTotal       `json:"low"`
	Mid           TierTotal       `json:"mid"`
	MidHigh       TierTotal       `json:"midHigh"`
	High          TierTotal       `json:"high"`
	RangeLow      int64           `json:"rangeLow"`
	RangeHigh     int64           `json:"rangeHigh"`
	Diagnostics   []Diagnostic    `json:"diagnostics,omitempty"`
}

// ProjectAddOns holds the flat project costs plus the sqft-proportional
// design fee.
type ProjectAddOns struct {
	Installation       int64 `json:"installation"`
	Fuel               int64 `json:"fuel"`
	Storage            int64 `json:"storage"`
	Kitchen            int64 `json:"kitchen"`
	PropertyManagement int64 `json:"propertyManagement"`
	DesignFee          int64 `json:"designFee"`
}

// Sum returns the total add-on amount.
func (a ProjectAddOns) Sum() int64 {
	return a.Installation + a.Fuel + a.Storage + a.Kitchen + a.PropertyManagement + a.DesignFee
}

// ProjectBudget extends a furnishings Budget with project add-ons layered on
// top of each tier's total.
type ProjectBudget struct {
	Budget
	ProjectAddOns    ProjectAddOns `json:"projectAddOns"`
	ProjectRange     TierAmounts   `json:"projectRange"`
	ProjectRangeLow  int64         `json:"projectRangeLow"`
	ProjectRangeHigh int64         `json:"projectRangeHigh"`
}

// Options carries the configuration of one aggregation call.
type Options struct {
	Defaults catalog.BudgetDefaults
	// DisableContingency skips the contingency buffer for project variants
	// that price it separately.
	DisableContingency bool
	Logger             logger.Logger
}
