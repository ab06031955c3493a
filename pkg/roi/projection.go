// pkg/roi/projection.go

// Package roi projects the financial gain of furnishing a short-term rental,
// comparing before/after occupancy and rate assumptions over a fixed cost
// structure. Pure arithmetic, no state.
package roi

// Scenario holds the revenue assumptions of one before/after case.
type Scenario struct {
	ADR       float64 `json:"adr"`       // average daily rate
	Occupancy float64 `json:"occupancy"` // fraction of nights booked, 0..1
}

// FixedCosts holds the annual cost structure. Mortgage is tracked separately
// because seller's discretionary earnings add it back.
type FixedCosts struct {
	Taxes       float64 `json:"taxes"`
	Insurance   float64 `json:"insurance"`
	Utilities   float64 `json:"utilities"`
	Maintenance float64 `json:"maintenance"`
	Supplies    float64 `json:"supplies"`
	Mortgage    float64 `json:"mortgage"`
}

// Inputs is the full projection input.
type Inputs struct {
	Before   Scenario   `json:"before"`
	After    Scenario   `json:"after"`
	Costs    FixedCosts `json:"costs"`
	PMPct    float64    `json:"pmPct"`    // property-management fee as a fraction of gross
	Multiple float64    `json:"multiple"` // enterprise-value multiple over SDE
}

// ScenarioComputed is the derived annual view of one scenario.
type ScenarioComputed struct {
	Gross           float64 `json:"gross"`
	PMFee           float64 `json:"pmFee"`
	OtherFixed      float64 `json:"otherFixed"`
	NetCashFlow     float64 `json:"netCashFlow"`
	SDE             float64 `json:"sde"`
	EnterpriseValue float64 `json:"enterpriseValue"`
}

// Gains holds the after-minus-before deltas.
type Gains struct {
	NetCashFlow     float64 `json:"netCashFlow"`
	EnterpriseValue float64 `json:"enterpriseValue"`
	FirstYearTotal  float64 `json:"firstYearTotal"`
}

// Computed is the full projection output.
type Computed struct {
	Before ScenarioComputed `json:"before"`
	After  ScenarioComputed `json:"after"`
	Gains  Gains            `json:"gains"`
}

// ComputeProjection derives both scenarios and their deltas.
func ComputeProjection(in Inputs) Computed {
	before := computeScenario(in.Before, in.Costs, in.PMPct, in.Multiple)
	after := computeScenario(in.After, in.Costs, in.PMPct, in.Multiple)

	gains := Gains{
		NetCashFlow:     after.NetCashFlow - before.NetCashFlow,
		EnterpriseValue: after.EnterpriseValue - before.EnterpriseValue,
	}
	gains.FirstYearTotal = gains.NetCashFlow + gains.EnterpriseValue

	return Computed{Before: before, After: after, Gains: gains}
}

func computeScenario(s Scenario, costs FixedCosts, pmPct, multiple float64) ScenarioComputed {
	gross := s.ADR * s.Occupancy * 365
	pmFee := gross * pmPct
	otherFixed := costs.Taxes + costs.Insurance + costs.Utilities + costs.Maintenance + costs.Supplies

	// SDE adds property management and mortgage back relative to net cash flow.
	return ScenarioComputed{
		Gross:           gross,
		PMFee:           pmFee,
		OtherFixed:      otherFixed,
		NetCashFlow:     gross - pmFee - costs.Mortgage - otherFixed,
		SDE:             gross - otherFixed,
		EnterpriseValue: (gross - otherFixed) * multiple,
	}
}
