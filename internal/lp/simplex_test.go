package lp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Two-supplier fixture: A is cheap and dirty, B is expensive and clean.
func twoSupplierProblem() Problem {
	return Problem{
		Objective: []float64{1.0, 0.2}, // minimize emissions
		Cost:      []float64{300, 400},
		CO2:       []float64{1.0, 0.2},
		Demand:    100,
		Budget:    35000,
		MaxActive: 2,
	}
}

func TestSimplexSolver(t *testing.T) {
	solver := &SimplexSolver{}

	t.Run("budget forces a split between suppliers", func(t *testing.T) {
		// All-B costs 40000 > 35000, so the optimum sits on the budget line:
		// 50 tons each, emissions 50*1.0 + 50*0.2 = 60.
		sol, err := solver.Solve(twoSupplierProblem())
		require.NoError(t, err)
		require.InDelta(t, 60, sol.Objective, 1e-6)
		require.InDelta(t, 50, sol.Tons[0], 1e-6)
		require.InDelta(t, 50, sol.Tons[1], 1e-6)
	})

	t.Run("loose budget goes all-in on the clean supplier", func(t *testing.T) {
		p := twoSupplierProblem()
		p.Budget = 45000
		sol, err := solver.Solve(p)
		require.NoError(t, err)
		require.InDelta(t, 20, sol.Objective, 1e-6)
		require.InDelta(t, 0, sol.Tons[0], 1e-6)
		require.InDelta(t, 100, sol.Tons[1], 1e-6)
	})

	t.Run("budget below the cheapest plan is infeasible", func(t *testing.T) {
		p := twoSupplierProblem()
		p.Budget = 25000 // all-A already costs 30000
		_, err := solver.Solve(p)
		require.ErrorIs(t, err, ErrInfeasible)
	})

	t.Run("single supplier limit enumerates subsets", func(t *testing.T) {
		// With K=1 and budget 35000 only A alone is affordable.
		p := twoSupplierProblem()
		p.MaxActive = 1
		sol, err := solver.Solve(p)
		require.NoError(t, err)
		require.InDelta(t, 100, sol.Objective, 1e-6)
		require.InDelta(t, 100, sol.Tons[0], 1e-6)
		require.InDelta(t, 0, sol.Tons[1], 1e-6)
	})

	t.Run("emissions cap shapes the cost optimum", func(t *testing.T) {
		// Minimize cost with emissions <= 60: the cap binds at a 50/50 split.
		p := Problem{
			Objective:    []float64{300, 400},
			Cost:         []float64{300, 400},
			CO2:          []float64{1.0, 0.2},
			Demand:       100,
			Budget:       45000,
			EmissionsCap: 60,
			Capped:       true,
			MaxActive:    2,
		}
		sol, err := solver.Solve(p)
		require.NoError(t, err)
		require.InDelta(t, 35000, sol.Objective, 1e-6)
		require.InDelta(t, 50, sol.Tons[0], 1e-6)
		require.InDelta(t, 50, sol.Tons[1], 1e-6)
	})

	t.Run("exact supplier count beyond the table is infeasible", func(t *testing.T) {
		p := twoSupplierProblem()
		p.MaxActive = 3
		p.ExactActive = true
		_, err := solver.Solve(p)
		require.ErrorIs(t, err, ErrInfeasible)
	})

	t.Run("limit beyond the table is clamped, not an error", func(t *testing.T) {
		p := twoSupplierProblem()
		p.MaxActive = 10
		_, err := solver.Solve(p)
		require.NoError(t, err)
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		_, err := solver.Solve(Problem{MaxActive: 1})
		require.ErrorIs(t, err, ErrInfeasible)

		p := twoSupplierProblem()
		p.MaxActive = 0
		_, err = solver.Solve(p)
		require.ErrorIs(t, err, ErrInfeasible)

		p = twoSupplierProblem()
		p.Cost = []float64{300}
		_, err = solver.Solve(p)
		require.Error(t, err)
	})
}

func TestSubsets(t *testing.T) {
	var got [][]int
	subsets(4, 2, func(idx []int) {
		cp := make([]int, len(idx))
		copy(cp, idx)
		got = append(got, cp)
	})
	require.Equal(t, [][]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	}, got)
}
