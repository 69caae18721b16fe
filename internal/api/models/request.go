package models

// AnalyzeRequest is the body for running a procurement risk analysis.
// Omitted fields fall back to the server's configured defaults; pointer
// fields distinguish "not sent" from an explicit zero (a zero-vol run is a
// legitimate request).
type AnalyzeRequest struct {
	Scenario           string    `json:"scenario,omitempty"`
	Months             int       `json:"months,omitempty"`
	BasePricePerTon    float64   `json:"base_price_per_ton,omitempty"`
	TotalSteel         float64   `json:"total_steel,omitempty"`
	DemandDistribution []float64 `json:"demand_distribution,omitempty"`

	Sims       int      `json:"sims,omitempty"`
	Vol        *float64 `json:"vol,omitempty"`
	HedgeRatio *float64 `json:"hedge_ratio,omitempty"`
	BasisMu    *float64 `json:"basis_mu,omitempty"`
	BasisSigma *float64 `json:"basis_sigma,omitempty"`
	Seed       *uint64  `json:"seed,omitempty"`
}

// SupplierPayload is one supplier row as carried over the wire.
type SupplierPayload struct {
	Name       string  `json:"supplier" binding:"required"`
	CostPerTon float64 `json:"cost_per_ton"`
	CO2PerTon  float64 `json:"co2_per_ton"`
}

// ParetoRequest is the body for building a sourcing trade-off menu.
// Suppliers may be embedded inline; otherwise the server's loaded table is
// used.
type ParetoRequest struct {
	Suppliers    []SupplierPayload `json:"suppliers,omitempty"`
	DemandTons   float64           `json:"demand_tons" binding:"required"`
	Budget       float64           `json:"budget" binding:"required"`
	MaxSuppliers int               `json:"max_suppliers" binding:"required"`
	ExactK       bool              `json:"exact_k,omitempty"`
	NPoints      int               `json:"n_points,omitempty"`
}

// ForecastRequest asks for one scenario's index path.
type ForecastRequest struct {
	Scenario string `json:"scenario,omitempty"`
	Months   int    `json:"months,omitempty"`
}
