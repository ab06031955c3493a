// pkg/roi/projection_test.go
package roi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProjection_OccupancyLiftWithZeroCosts(t *testing.T) {
	in := Inputs{
		Before:   Scenario{ADR: 300, Occupancy: 0.43},
		After:    Scenario{ADR: 300, Occupancy: 0.70},
		Multiple: 3,
	}

	out := ComputeProjection(in)

	assert.InDelta(t, 47085, out.Before.Gross, 0.01)
	assert.InDelta(t, 76650, out.After.Gross, 0.01)

	// With zero costs and no PM fee, net cash flow equals gross.
	assert.InDelta(t, 29565, out.Gains.NetCashFlow, 0.01)
	assert.InDelta(t, 29565*3, out.Gains.EnterpriseValue, 0.01)
	assert.InDelta(t, 29565*4, out.Gains.FirstYearTotal, 0.01)
}

func TestComputeProjection_FixedCostsAndPMFee(t *testing.T) {
	in := Inputs{
		Before: Scenario{ADR: 200, Occupancy: 0.50},
		After:  Scenario{ADR: 250, Occupancy: 0.65},
		Costs: FixedCosts{
			Taxes:       6000,
			Insurance:   2000,
			Utilities:   3000,
			Maintenance: 2500,
			Supplies:    1500,
			Mortgage:    24000,
		},
		PMPct:    0.2,
		Multiple: 3.5,
	}

	out := ComputeProjection(in)

	gross := 200 * 0.50 * 365.0
	assert.InDelta(t, gross, out.Before.Gross, 0.01)
	assert.InDelta(t, gross*0.2, out.Before.PMFee, 0.01)
	assert.InDelta(t, 15000, out.Before.OtherFixed, 0.01)
	assert.InDelta(t, gross-gross*0.2-24000-15000, out.Before.NetCashFlow, 0.01)

	// SDE adds PM fee and mortgage back.
	assert.InDelta(t, gross-15000, out.Before.SDE, 0.01)
	assert.InDelta(t, (gross-15000)*3.5, out.Before.EnterpriseValue, 0.01)

	assert.InDelta(t, out.After.NetCashFlow-out.Before.NetCashFlow, out.Gains.NetCashFlow, 0.01)
	assert.InDelta(t, out.Gains.NetCashFlow+out.Gains.EnterpriseValue, out.Gains.FirstYearTotal, 0.01)
}

func TestComputeProjection_NoChangeYieldsZeroGain(t *testing.T) {
	s := Scenario{ADR: 180, Occupancy: 0.55}
	in := Inputs{
		Before:   s,
		After:    s,
		Costs:    FixedCosts{Taxes: 5000, Mortgage: 18000},
		PMPct:    0.15,
		Multiple: 3,
	}

	out := ComputeProjection(in)

	assert.Zero(t, out.Gains.NetCashFlow)
	assert.Zero(t, out.Gains.EnterpriseValue)
	assert.Zero(t, out.Gains.FirstYearTotal)
}
