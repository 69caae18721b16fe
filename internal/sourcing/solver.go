package sourcing

import (
	"fmt"

	"steel-procurement/internal/lp"
	"steel-procurement/internal/model"
)

// ErrInfeasible is the signal callers branch on when a sourcing request has
// no feasible plan. It is the solver's sentinel re-exported so handlers don't
// import the lp package.
var ErrInfeasible = lp.ErrInfeasible

// Params are the shared constraints of both allocation variants.
type Params struct {
	Suppliers    []model.Supplier
	DemandTons   float64
	Budget       float64
	MaxSuppliers int
	ExactK       bool
}

// MinEmissions finds the allocation with the lowest total emissions that
// meets demand under the budget and supplier-count limits.
func MinEmissions(solver lp.Solver, p Params) (*model.AllocationPlan, error) {
	prob := problem(p)
	for i, s := range p.Suppliers {
		prob.Objective[i] = s.CO2PerTon
	}
	return solve(solver, prob, p.Suppliers)
}

// MinCostGivenEmissionsCap finds the cheapest allocation that meets demand
// under the budget, supplier-count, and emissions-cap limits.
func MinCostGivenEmissionsCap(solver lp.Solver, p Params, emissCap float64) (*model.AllocationPlan, error) {
	prob := problem(p)
	for i, s := range p.Suppliers {
		prob.Objective[i] = s.CostPerTon
	}
	prob.Capped = true
	prob.EmissionsCap = emissCap
	return solve(solver, prob, p.Suppliers)
}

func problem(p Params) lp.Problem {
	n := len(p.Suppliers)
	prob := lp.Problem{
		Objective:   make([]float64, n),
		Cost:        make([]float64, n),
		CO2:         make([]float64, n),
		Demand:      p.DemandTons,
		Budget:      p.Budget,
		MaxActive:   p.MaxSuppliers,
		ExactActive: p.ExactK,
	}
	for i, s := range p.Suppliers {
		prob.Cost[i] = s.CostPerTon
		prob.CO2[i] = s.CO2PerTon
	}
	return prob
}

// solve runs the backend and re-prices the solution: realized cost and
// emissions come from the allocation itself, not the solver objective, since
// the objective is only one of the two metrics.
func solve(solver lp.Solver, prob lp.Problem, suppliers []model.Supplier) (*model.AllocationPlan, error) {
	sol, err := solver.Solve(prob)
	if err != nil {
		return nil, err
	}
	if len(sol.Tons) != len(suppliers) {
		return nil, fmt.Errorf("solver returned %d tonnages for %d suppliers", len(sol.Tons), len(suppliers))
	}
	plan := &model.AllocationPlan{Alloc: make(map[string]float64, len(suppliers))}
	for i, s := range suppliers {
		tons := sol.Tons[i]
		plan.Alloc[s.Name] = tons
		plan.TotalCost += tons * s.CostPerTon
		plan.TotalEmissions += tons * s.CO2PerTon
	}
	return plan, nil
}
