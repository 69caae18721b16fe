package models

// StrategySummary is one strategy's cost distribution in $ millions.
type StrategySummary struct {
	MeanM float64 `json:"mean_$M"`
	P95M  float64 `json:"p95_$M"`
	P05M  float64 `json:"p05_$M"`
	StdM  float64 `json:"std_$M"`
}

// AnalyzeResponse maps strategy name to its summary statistics.
type AnalyzeResponse struct {
	Scenario   string                     `json:"scenario"`
	Months     int                        `json:"months"`
	TotalSteel float64                    `json:"total_steel"`
	Summary    map[string]StrategySummary `json:"summary"`
}

// ParetoPlan is one entry of the sourcing trade-off menu.
type ParetoPlan struct {
	Label          string             `json:"label"`
	TotalCost      float64            `json:"total_cost_$"`
	TotalEmissions float64            `json:"total_emissions_tCO2e"`
	NumSuppliers   int                `json:"num_suppliers"`
	Suppliers      string             `json:"suppliers"`
	AllocTons      map[string]float64 `json:"alloc_tons"`
}

// ParetoResponse is the ordered trade-off menu, lowest emissions first.
type ParetoResponse struct {
	Plans []ParetoPlan `json:"plans"`
}

// SteelPrice is one month of the forecast index path.
type SteelPrice struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Index float64 `json:"steel_price_index"`
}

// ForecastResponse is one scenario's index path.
type ForecastResponse struct {
	Scenario string       `json:"scenario"`
	Months   int          `json:"months"`
	Data     []SteelPrice `json:"data"`
}

// ScenariosResponse carries every scenario's path.
type ScenariosResponse struct {
	Months    int                     `json:"months"`
	Scenarios map[string][]SteelPrice `json:"scenarios"`
}

// StrategyInfo describes one procurement strategy.
type StrategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SuppliersResponse is the server's loaded supplier table.
type SuppliersResponse struct {
	Suppliers []SupplierPayload `json:"suppliers"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
