package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"steel-procurement/internal/api/models"
	"steel-procurement/internal/data"
)

// ListStrategies handles GET /api/v1/strategies
func ListStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, []models.StrategyInfo{
		{
			Name:        "Spot Now",
			Description: "Buy the entire demand up-front at today's price.",
		},
		{
			Name:        "Spot Later",
			Description: "Buy each month's need at that month's spot price.",
		},
		{
			Name:        "Ladder",
			Description: "Buy four equal tranches of each month's demand at scheduled ladder months.",
		},
		{
			Name:        "Hedge",
			Description: "Lock a fixed fraction of demand at the forward curve, buy the rest at spot.",
		},
	})
}

// SupplierHandler serves the loaded supplier table.
type SupplierHandler struct {
	suppliers *data.SupplierCache
}

func NewSupplierHandler(cache *data.SupplierCache) *SupplierHandler {
	return &SupplierHandler{suppliers: cache}
}

// ListSuppliers handles GET /api/v1/suppliers
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	table, err := h.suppliers.Table()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SUPPLIERS_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	out := make([]models.SupplierPayload, len(table))
	for i, s := range table {
		out[i] = models.SupplierPayload{
			Name:       s.Name,
			CostPerTon: s.CostPerTon,
			CO2PerTon:  s.CO2PerTon,
		}
	}
	c.JSON(http.StatusOK, models.SuppliersResponse{Suppliers: out})
}
