// pkg/budget/project.go
package budget

import "furnishing-engine/pkg/catalog"

// CalculateProjectEstimate extends the furnishings estimate with fixed
// add-ons and the sqft-proportional design fee. Add-ons are flat across
// tiers; each tier's project amount is its furnishings total plus the add-on
// sum, and the headline project range is again low/mid.
func CalculateProjectEstimate(
	rooms []catalog.SelectedRoom,
	templates map[string]catalog.RoomTemplate,
	items map[string]catalog.Item,
	specs catalog.PropertySpecs,
	opts Options,
) *ProjectBudget {
	base := aggregate(rooms, templates, items, opts, "project")

	d := opts.Defaults
	addOns := ProjectAddOns{
		Installation:       d.InstallationFee,
		Fuel:               d.FuelFee,
		Storage:            d.StorageFee,
		Kitchen:            d.KitchenFee,
		PropertyManagement: d.PropertyMgmtFee,
		DesignFee:          d.DesignFeePerSqft * int64(specs.SquareFootage),
	}
	addOnTotal := addOns.Sum()

	projectRange := TierAmounts{
		Low:     base.Low.Total + addOnTotal,
		Mid:     base.Mid.Total + addOnTotal,
		MidHigh: base.MidHigh.Total + addOnTotal,
		High:    base.High.Total + addOnTotal,
	}

	return &ProjectBudget{
		Budget:           *base,
		ProjectAddOns:    addOns,
		ProjectRange:     projectRange,
		ProjectRangeLow:  projectRange.Low,
		ProjectRangeHigh: projectRange.Mid,
	}
}
