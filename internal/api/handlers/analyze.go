package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"steel-procurement/internal/api/models"
	"steel-procurement/internal/config"
	"steel-procurement/internal/forecast"
	"steel-procurement/internal/model"
	"steel-procurement/internal/procurement"
)

// AnalyzeHandler runs Monte Carlo procurement risk analyses.
type AnalyzeHandler struct {
	forecaster *forecast.Forecaster
	defaults   config.AnalysisConfig
}

func NewAnalyzeHandler(f *forecast.Forecaster, defaults config.AnalysisConfig) *AnalyzeHandler {
	return &AnalyzeHandler{forecaster: f, defaults: defaults}
}

// RunAnalysis handles POST /api/v1/analyze
func (h *AnalyzeHandler) RunAnalysis(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	in := h.buildInputs(req)

	points, err := h.forecaster.Forecast(in.scenario, in.months)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "FORECAST_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	baseline := model.PricePathFromIndex(points, in.basePrice)

	// Validation errors are raised before any simulation work starts.
	demand, err := model.NewDemandProfile(in.totalSteel, len(baseline), req.DemandDistribution)
	if err != nil {
		code := "INVALID_DEMAND"
		if errors.Is(err, model.ErrInvalidDemandDistribution) {
			code = "INVALID_DEMAND_DISTRIBUTION"
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	engine := procurement.New()
	result, err := engine.Run(procurement.Inputs{
		Baseline:   baseline,
		Demand:     demand,
		Sims:       in.sims,
		Vol:        in.vol,
		HedgeRatio: in.hedgeRatio,
		BasisMu:    in.basisMu,
		BasisSigma: in.basisSigma,
		Seed:       in.seed,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_ANALYSIS",
				Message: err.Error(),
			},
		})
		return
	}

	summary := make(map[string]models.StrategySummary, len(result.Summaries))
	for name, s := range result.Summaries {
		summary[name] = models.StrategySummary{
			MeanM: s.MeanM,
			P95M:  s.P95M,
			P05M:  s.P05M,
			StdM:  s.StdM,
		}
	}
	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Scenario:   in.scenario,
		Months:     in.months,
		TotalSteel: in.totalSteel,
		Summary:    summary,
	})
}

type analysisInputs struct {
	scenario   string
	months     int
	basePrice  float64
	totalSteel float64
	sims       int
	vol        float64
	hedgeRatio float64
	basisMu    float64
	basisSigma float64
	seed       uint64
}

// buildInputs overlays the request onto the configured defaults. Pointer
// fields override even with explicit zeros (a zero-vol run is meaningful).
func (h *AnalyzeHandler) buildInputs(req models.AnalyzeRequest) analysisInputs {
	d := h.defaults
	in := analysisInputs{
		scenario:   d.Scenario,
		months:     d.Months,
		basePrice:  d.BasePricePerTon,
		totalSteel: d.TotalSteel,
		sims:       d.Sims,
		vol:        d.Vol,
		hedgeRatio: d.HedgeRatio,
		basisMu:    d.BasisMu,
		basisSigma: d.BasisSigma,
		seed:       d.Seed,
	}
	if req.Scenario != "" {
		in.scenario = req.Scenario
	}
	if req.Months > 0 {
		in.months = req.Months
	}
	if req.BasePricePerTon > 0 {
		in.basePrice = req.BasePricePerTon
	}
	if req.TotalSteel > 0 {
		in.totalSteel = req.TotalSteel
	}
	if req.Sims > 0 {
		in.sims = req.Sims
	}
	if req.Vol != nil {
		in.vol = *req.Vol
	}
	if req.HedgeRatio != nil {
		in.hedgeRatio = *req.HedgeRatio
	}
	if req.BasisMu != nil {
		in.basisMu = *req.BasisMu
	}
	if req.BasisSigma != nil {
		in.basisSigma = *req.BasisSigma
	}
	if req.Seed != nil {
		in.seed = *req.Seed
	}
	return in
}
