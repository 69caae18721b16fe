package lp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// activeTol is the tonnage below which a supplier counts as unused.
const activeTol = 1e-6

// SimplexSolver solves supplier-allocation problems exactly on gonum's
// simplex method.
//
// The MILP formulation upstream links tonnage to a binary "selected" variable
// through a big-M constraint (M = demand, tight since suppliers are
// uncapped). With uncapped suppliers that machinery is equivalent to a
// cardinality bound on positive tonnages, and a basic optimal solution of the
// continuous program activates at most one supplier per constraint row
// (<= 3). So when MaxActive covers the row count a single relaxed solve is
// already feasible for the cardinality bound; tighter limits are solved
// exactly by enumerating supplier subsets of size MaxActive, which any
// optimal active set must be contained in.
type SimplexSolver struct {
	// Tol is passed through to lp.Simplex; zero means gonum's default.
	Tol float64
}

func (s *SimplexSolver) Solve(p Problem) (*Solution, error) {
	n := len(p.Objective)
	if n == 0 {
		return nil, fmt.Errorf("%w: no suppliers", ErrInfeasible)
	}
	if len(p.Cost) != n || len(p.CO2) != n {
		return nil, fmt.Errorf("coefficient lengths disagree: objective=%d cost=%d co2=%d",
			n, len(p.Cost), len(p.CO2))
	}

	k := p.MaxActive
	if k <= 0 {
		return nil, fmt.Errorf("%w: max suppliers must be positive, got %d", ErrInfeasible, k)
	}
	if p.ExactActive && k > n {
		// Exactly K selected needs K distinct suppliers; selection without
		// allocation is otherwise free, so exact-K never binds beyond this.
		return nil, fmt.Errorf("%w: exactly %d suppliers required but only %d exist", ErrInfeasible, k, n)
	}
	if k > n {
		k = n
	}

	rows := 2
	if p.Capped {
		rows = 3
	}
	if k >= rows {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return s.solveSubset(p, all, rows)
	}

	// Cardinality bound tighter than the row count: enumerate size-k subsets
	// and keep the best restricted solve. Supplier tables are small enough
	// that C(n, k) with k <= 2 stays trivial.
	var best *Solution
	subsets(n, k, func(idx []int) {
		sol, err := s.solveSubset(p, idx, rows)
		if err != nil {
			return
		}
		if best == nil || sol.Objective < best.Objective {
			best = sol
		}
	})
	if best == nil {
		return nil, fmt.Errorf("%w: no subset of %d suppliers satisfies demand/budget", ErrInfeasible, k)
	}
	return best, nil
}

// solveSubset solves the program restricted to the given supplier indices.
// Standard form for lp.Simplex: minimize c'x subject to Ax = b, x >= 0, with
// a surplus variable on the demand row and slacks on budget/cap rows.
func (s *SimplexSolver) solveSubset(p Problem, idx []int, rows int) (*Solution, error) {
	cols := len(idx) + rows

	c := make([]float64, cols)
	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)

	for j, i := range idx {
		c[j] = p.Objective[i]
		a.Set(0, j, 1)
		a.Set(1, j, p.Cost[i])
		if p.Capped {
			a.Set(2, j, p.CO2[i])
		}
	}
	// Demand surplus, budget slack, cap slack.
	a.Set(0, len(idx), -1)
	a.Set(1, len(idx)+1, 1)
	b[0] = p.Demand
	b[1] = p.Budget
	if p.Capped {
		a.Set(2, len(idx)+2, 1)
		b[2] = p.EmissionsCap
	}

	obj, x, err := lp.Simplex(c, a, b, s.Tol, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInfeasible, err)
	}

	tons := make([]float64, len(p.Objective))
	for j, i := range idx {
		tons[i] = math.Max(0, x[j])
	}
	return &Solution{Tons: tons, Objective: obj}, nil
}

// subsets calls fn with every size-k index subset of 0..n-1.
func subsets(n, k int, fn func([]int)) {
	idx := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			fn(idx)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			idx[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}
