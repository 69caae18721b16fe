package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"steel-procurement/internal/api/models"
	"steel-procurement/internal/config"
	"steel-procurement/internal/data"
	"steel-procurement/internal/lp"
	"steel-procurement/internal/model"
	"steel-procurement/internal/sourcing"
)

// ParetoHandler builds sourcing trade-off menus.
type ParetoHandler struct {
	suppliers *data.SupplierCache
	solver    lp.Solver
	defaults  config.SourcingConfig
}

func NewParetoHandler(cache *data.SupplierCache, solver lp.Solver, defaults config.SourcingConfig) *ParetoHandler {
	return &ParetoHandler{suppliers: cache, solver: solver, defaults: defaults}
}

// RunPareto handles POST /api/v1/pareto
func (h *ParetoHandler) RunPareto(c *gin.Context) {
	var req models.ParetoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	suppliers, err := h.resolveSuppliers(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SUPPLIERS",
				Message: err.Error(),
			},
		})
		return
	}

	nPoints := req.NPoints
	if nPoints <= 0 {
		nPoints = h.defaults.NPoints
	}

	plans, err := sourcing.BuildFrontier(h.solver, sourcing.Params{
		Suppliers:    suppliers,
		DemandTons:   req.DemandTons,
		Budget:       req.Budget,
		MaxSuppliers: req.MaxSuppliers,
		ExactK:       req.ExactK,
	}, nPoints)
	if err != nil {
		if errors.Is(err, sourcing.ErrInfeasible) {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INFEASIBLE_ALLOCATION",
					Message: err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SOLVER_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	out := make([]models.ParetoPlan, len(plans))
	for i, pl := range plans {
		out[i] = models.ParetoPlan{
			Label:          pl.Label,
			TotalCost:      pl.TotalCost,
			TotalEmissions: pl.TotalEmissions,
			NumSuppliers:   pl.NumSuppliers,
			Suppliers:      strings.Join(pl.Suppliers, ", "),
			AllocTons:      pl.AllocTons,
		}
	}
	c.JSON(http.StatusOK, models.ParetoResponse{Plans: out})
}

// resolveSuppliers prefers an inline table over the server's loaded one.
func (h *ParetoHandler) resolveSuppliers(req models.ParetoRequest) ([]model.Supplier, error) {
	if len(req.Suppliers) > 0 {
		suppliers := make([]model.Supplier, len(req.Suppliers))
		for i, s := range req.Suppliers {
			suppliers[i] = model.Supplier{
				Name:       s.Name,
				CostPerTon: s.CostPerTon,
				CO2PerTon:  s.CO2PerTon,
			}
		}
		if err := data.ValidateSuppliers(suppliers); err != nil {
			return nil, err
		}
		return suppliers, nil
	}
	return h.suppliers.Table()
}
