package model

// Supplier is one row of the supplier cost/emissions table.
// Name is the unique key; rates are per ton of delivered steel.
type Supplier struct {
	Name       string  `json:"supplier" csv:"supplier"`
	CostPerTon float64 `json:"cost_per_ton" csv:"cost_per_ton"`
	CO2PerTon  float64 `json:"co2_per_ton" csv:"co2_per_ton"`
}

// AllocationPlan is a solved sourcing plan: tons per supplier plus the
// realized totals. TotalCost and TotalEmissions are recomputed from the
// allocation, never assumed equal to the solver objective.
type AllocationPlan struct {
	Alloc          map[string]float64
	TotalCost      float64
	TotalEmissions float64
}
