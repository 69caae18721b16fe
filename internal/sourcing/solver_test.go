package sourcing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"steel-procurement/internal/lp"
	"steel-procurement/internal/model"
)

func testParams() Params {
	return Params{
		Suppliers: []model.Supplier{
			{Name: "A", CostPerTon: 300, CO2PerTon: 1.0},
			{Name: "B", CostPerTon: 400, CO2PerTon: 0.2},
		},
		DemandTons:   100,
		Budget:       45000,
		MaxSuppliers: 2,
	}
}

func TestMinEmissions(t *testing.T) {
	solver := &lp.SimplexSolver{}

	t.Run("prefers the clean supplier when the budget permits", func(t *testing.T) {
		plan, err := MinEmissions(solver, testParams())
		require.NoError(t, err)
		require.InDelta(t, 100, plan.Alloc["B"], 1e-6)
		require.InDelta(t, 0, plan.Alloc["A"], 1e-6)
		require.InDelta(t, 40000, plan.TotalCost, 1e-6)
		require.InDelta(t, 20, plan.TotalEmissions, 1e-6)
	})

	t.Run("tight budget splits the allocation", func(t *testing.T) {
		p := testParams()
		p.Budget = 35000
		plan, err := MinEmissions(solver, p)
		require.NoError(t, err)
		require.InDelta(t, 50, plan.Alloc["A"], 1e-6)
		require.InDelta(t, 50, plan.Alloc["B"], 1e-6)
		require.InDelta(t, 35000, plan.TotalCost, 1e-6)
		require.InDelta(t, 60, plan.TotalEmissions, 1e-6)
	})

	t.Run("impossible budget is infeasible", func(t *testing.T) {
		p := testParams()
		p.Budget = 25000
		_, err := MinEmissions(solver, p)
		require.ErrorIs(t, err, ErrInfeasible)
	})
}

func TestMinCostGivenEmissionsCap(t *testing.T) {
	solver := &lp.SimplexSolver{}

	t.Run("loose cap buys cheap", func(t *testing.T) {
		plan, err := MinCostGivenEmissionsCap(solver, testParams(), 1000)
		require.NoError(t, err)
		require.InDelta(t, 100, plan.Alloc["A"], 1e-6)
		require.InDelta(t, 30000, plan.TotalCost, 1e-6)
		require.InDelta(t, 100, plan.TotalEmissions, 1e-6)
	})

	t.Run("binding cap trades cost for emissions", func(t *testing.T) {
		plan, err := MinCostGivenEmissionsCap(solver, testParams(), 60)
		require.NoError(t, err)
		require.InDelta(t, 50, plan.Alloc["A"], 1e-6)
		require.InDelta(t, 50, plan.Alloc["B"], 1e-6)
		require.InDelta(t, 35000, plan.TotalCost, 1e-6)
		require.InDelta(t, 60, plan.TotalEmissions, 1e-6)
	})

	t.Run("cap below the cleanest plan is infeasible", func(t *testing.T) {
		_, err := MinCostGivenEmissionsCap(solver, testParams(), 10)
		require.ErrorIs(t, err, ErrInfeasible)
	})
}
