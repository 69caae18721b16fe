// Package lp solves the supplier-allocation linear programs behind the
// sourcing engine. The Solver interface is deliberately narrow — a problem in,
// an allocation or an infeasibility signal out — so the frontier builder never
// touches a particular backend.
package lp

import "errors"

// ErrInfeasible signals that no allocation satisfies the constraints
// (budget too small to meet demand, supplier limit too tight, cap too low).
var ErrInfeasible = errors.New("no feasible allocation")

// Problem is one minimization over per-supplier tonnages x >= 0:
//
//	minimize   sum Objective[i] * x[i]
//	subject to sum x[i]           >= Demand
//	           sum Cost[i] * x[i] <= Budget
//	           sum CO2[i]  * x[i] <= EmissionsCap   (only if Capped)
//	           at most MaxActive suppliers with x[i] > 0
//	           (exactly MaxActive selected if ExactActive)
type Problem struct {
	Objective []float64
	Cost      []float64
	CO2       []float64

	Demand       float64
	Budget       float64
	EmissionsCap float64
	Capped       bool

	MaxActive   int
	ExactActive bool
}

// Solution is an optimal allocation; Tons is indexed like the problem's
// coefficient slices.
type Solution struct {
	Tons      []float64
	Objective float64
}

// Solver solves one Problem or reports it infeasible.
type Solver interface {
	Solve(p Problem) (*Solution, error)
}
