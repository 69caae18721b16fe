package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"steel-procurement/internal/api/models"
	"steel-procurement/internal/forecast"
	"steel-procurement/internal/model"
)

// ForecastHandler exposes the scenario index curves.
type ForecastHandler struct {
	forecaster *forecast.Forecaster
}

func NewForecastHandler(f *forecast.Forecaster) *ForecastHandler {
	return &ForecastHandler{forecaster: f}
}

// GetForecast handles POST /api/v1/forecast
func (h *ForecastHandler) GetForecast(c *gin.Context) {
	req := models.ForecastRequest{Scenario: "baseline", Months: 12}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	points, err := h.forecaster.Forecast(req.Scenario, req.Months)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "FORECAST_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.ForecastResponse{
		Scenario: req.Scenario,
		Months:   req.Months,
		Data:     toSteelPrices(points),
	})
}

// GetScenarios handles GET /api/v1/scenarios
func (h *ForecastHandler) GetScenarios(c *gin.Context) {
	months := 12
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_REQUEST",
					Message: "months must be a positive integer",
				},
			})
			return
		}
		months = n
	}

	all, err := h.forecaster.AllScenarios(months)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "FORECAST_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	scenarios := make(map[string][]models.SteelPrice, len(all))
	for name, points := range all {
		scenarios[name] = toSteelPrices(points)
	}
	c.JSON(http.StatusOK, models.ScenariosResponse{
		Months:    months,
		Scenarios: scenarios,
	})
}

func toSteelPrices(points []model.IndexPoint) []models.SteelPrice {
	out := make([]models.SteelPrice, len(points))
	for i, p := range points {
		out[i] = models.SteelPrice{Month: p.Month, Year: p.Year, Index: p.Index}
	}
	return out
}
