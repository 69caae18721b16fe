package sourcing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"steel-procurement/internal/lp"
	"steel-procurement/internal/model"
)

func TestBuildFrontier(t *testing.T) {
	solver := &lp.SimplexSolver{}

	t.Run("anchors bracket a sorted unique menu", func(t *testing.T) {
		plans, err := BuildFrontier(solver, testParams(), 5)
		require.NoError(t, err)
		require.NotEmpty(t, plans)
		require.LessOrEqual(t, len(plans), 5)

		// Sorted by emissions ascending, anchors at the ends.
		require.Equal(t, LabelMinCO2, plans[0].Label)
		require.Equal(t, LabelMinCost, plans[len(plans)-1].Label)
		require.InDelta(t, 20, plans[0].TotalEmissions, 1e-6)
		require.InDelta(t, 30000, plans[len(plans)-1].TotalCost, 1e-6)

		seen := map[[2]float64]struct{}{}
		for i, pl := range plans {
			key := [2]float64{pl.TotalCost, pl.TotalEmissions}
			_, dup := seen[key]
			require.Falsef(t, dup, "duplicate plan at index %d", i)
			seen[key] = struct{}{}

			if i > 0 {
				prev := plans[i-1]
				require.GreaterOrEqual(t, pl.TotalEmissions, prev.TotalEmissions)
				// The frontier trades emissions for cost: letting emissions
				// rise never makes the plan more expensive.
				require.LessOrEqual(t, pl.TotalCost, prev.TotalCost)
			}
		}
	})

	t.Run("plans report only active suppliers", func(t *testing.T) {
		plans, err := BuildFrontier(solver, testParams(), 5)
		require.NoError(t, err)

		cleanest := plans[0]
		require.Equal(t, 1, cleanest.NumSuppliers)
		require.Equal(t, []string{"B"}, cleanest.Suppliers)
		require.NotContains(t, cleanest.AllocTons, "A")

		cheapest := plans[len(plans)-1]
		require.Equal(t, []string{"A"}, cheapest.Suppliers)
	})

	t.Run("interior plans interpolate between the anchors", func(t *testing.T) {
		plans, err := BuildFrontier(solver, testParams(), 5)
		require.NoError(t, err)
		require.Greater(t, len(plans), 2, "cap sweep should contribute interior plans")
		for _, pl := range plans[1 : len(plans)-1] {
			require.Contains(t, pl.Label, "Trade-off")
			require.Equal(t, 2, pl.NumSuppliers)
		}
	})

	t.Run("infeasible budget fails the whole request", func(t *testing.T) {
		p := testParams()
		p.Budget = 25000
		_, err := BuildFrontier(solver, p, 5)
		require.ErrorIs(t, err, ErrInfeasible)
		require.Contains(t, err.Error(), "min-CO2")
	})

	t.Run("single supplier collapses to one plan", func(t *testing.T) {
		p := Params{
			Suppliers:    []model.Supplier{{Name: "Solo", CostPerTon: 500, CO2PerTon: 1.0}},
			DemandTons:   100,
			Budget:       100000,
			MaxSuppliers: 1,
		}
		plans, err := BuildFrontier(solver, p, 5)
		require.NoError(t, err)
		require.Len(t, plans, 1)
		require.Equal(t, LabelMinCO2, plans[0].Label)
	})

	t.Run("non-positive point count rejected", func(t *testing.T) {
		_, err := BuildFrontier(solver, testParams(), 0)
		require.Error(t, err)
	})

	t.Run("downsampling keeps both anchors", func(t *testing.T) {
		plans, err := BuildFrontier(solver, testParams(), 3)
		require.NoError(t, err)
		require.LessOrEqual(t, len(plans), 3)

		labels := make([]string, len(plans))
		for i, pl := range plans {
			labels[i] = pl.Label
		}
		require.Contains(t, labels, LabelMinCO2)
		require.Contains(t, labels, LabelMinCost)
	})
}

func TestWriteMenuCSV(t *testing.T) {
	plans, err := BuildFrontier(&lp.SimplexSolver{}, testParams(), 4)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "menu.csv")
	require.NoError(t, WriteMenuCSV(path, plans))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Equal(t, "label,total_cost_$,total_emissions_tCO2e,num_suppliers,suppliers", lines[0])
	require.Len(t, lines, len(plans)+1)
	require.True(t, strings.HasPrefix(lines[1], LabelMinCO2+","))
}
