package sourcing

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"steel-procurement/internal/lp"
	"steel-procurement/internal/model"
)

const (
	// allocThreshold is the tonnage below which a supplier is omitted from
	// the reported plan.
	allocThreshold = 1e-6

	// minSweepCaps keeps the cap sweep dense enough to find unique plans
	// even for small menus.
	minSweepCaps = 25
)

// Anchor labels. These two plans bracket the frontier and always survive
// downsampling.
const (
	LabelMinCO2  = "Min-CO2"
	LabelMinCost = "Min-Cost"
)

// FrontierPoint is one entry of the trade-off menu.
type FrontierPoint struct {
	Label          string
	TotalCost      float64
	TotalEmissions float64
	NumSuppliers   int
	Suppliers      []string
	AllocTons      map[string]float64
}

// BuildFrontier traces the cost/emissions trade-off with the
// epsilon-constraint method: anchor the lowest-emissions and lowest-cost
// plans, sweep emission caps between them, and keep up to nPoints unique
// non-dominated plans sorted by (emissions, cost) ascending.
//
// Either anchor being infeasible fails the whole request — callers never see
// a partially filled menu.
func BuildFrontier(solver lp.Solver, p Params, nPoints int) ([]FrontierPoint, error) {
	if nPoints <= 0 {
		return nil, fmt.Errorf("n_points must be positive, got %d", nPoints)
	}

	minCO2, err := MinEmissions(solver, p)
	if err != nil {
		return nil, fmt.Errorf("no feasible min-CO2 plan, check demand/budget/max_suppliers: %w", err)
	}

	minEmiss := minCO2.TotalEmissions
	looseCap := math.Max(minEmiss*1.5, minEmiss+1e6)
	minCost, err := MinCostGivenEmissionsCap(solver, p, looseCap)
	if err != nil {
		return nil, fmt.Errorf("no feasible min-cost plan under budget/max_suppliers: %w", err)
	}

	seen := map[planKey]struct{}{}
	plans := []FrontierPoint{pack(LabelMinCO2, minCO2)}
	seen[keyOf(minCO2)] = struct{}{}

	// A degenerate frontier collapses both anchors onto one point; keep the
	// menu unique rather than repeating it under a second label.
	if _, dup := seen[keyOf(minCost)]; !dup {
		plans = append(plans, pack(LabelMinCost, minCost))
		seen[keyOf(minCost)] = struct{}{}
	}

	// Sweep 3x the requested points (at least 25) to ride out duplicates:
	// neighboring caps often land on the same basic solution.
	numCaps := nPoints * 3
	if numCaps < minSweepCaps {
		numCaps = minSweepCaps
	}
	maxEmiss := math.Max(minEmiss*1.3, minCost.TotalEmissions)
	caps := floats.Span(make([]float64, numCaps), minEmiss, maxEmiss)

	for _, cap := range caps {
		if len(plans) >= nPoints {
			break
		}
		res, err := MinCostGivenEmissionsCap(solver, p, cap)
		if err != nil {
			continue // infeasible cap, keep sweeping
		}
		k := keyOf(res)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		plans = append(plans, pack(fmt.Sprintf("Trade-off (cap=%.2f)", cap), res))
	}

	sort.Slice(plans, func(i, j int) bool {
		if plans[i].TotalEmissions != plans[j].TotalEmissions {
			return plans[i].TotalEmissions < plans[j].TotalEmissions
		}
		return plans[i].TotalCost < plans[j].TotalCost
	})

	if len(plans) > nPoints {
		plans = downsample(plans, nPoints)
	}
	return plans, nil
}

// downsample keeps the anchors and an evenly index-strided subset of the
// interior trade-off plans, preserving (emissions, cost) order.
func downsample(plans []FrontierPoint, nPoints int) []FrontierPoint {
	var anchorIdx, interiorIdx []int
	for i, pl := range plans {
		if pl.Label == LabelMinCO2 || pl.Label == LabelMinCost {
			anchorIdx = append(anchorIdx, i)
		} else {
			interiorIdx = append(interiorIdx, i)
		}
	}

	needed := nPoints - len(anchorIdx)
	keep := append([]int{}, anchorIdx...)
	if needed > 0 {
		if len(interiorIdx) > needed {
			stride := float64(len(interiorIdx)) / float64(needed)
			for i := 0; i < needed; i++ {
				keep = append(keep, interiorIdx[int(float64(i)*stride)])
			}
		} else {
			keep = append(keep, interiorIdx...)
		}
	}
	sort.Ints(keep)

	out := make([]FrontierPoint, 0, len(keep))
	for _, i := range keep {
		out = append(out, plans[i])
	}
	return out
}

// planKey de-duplicates plans that round to the same outcome: cost to cents,
// emissions to 1e-6 tCO2e.
type planKey struct {
	cost  float64
	emiss float64
}

func keyOf(plan *model.AllocationPlan) planKey {
	return planKey{
		cost:  math.Round(plan.TotalCost*100) / 100,
		emiss: math.Round(plan.TotalEmissions*1e6) / 1e6,
	}
}

func pack(label string, plan *model.AllocationPlan) FrontierPoint {
	alloc := make(map[string]float64)
	used := make([]string, 0, len(plan.Alloc))
	for name, tons := range plan.Alloc {
		if tons > allocThreshold {
			alloc[name] = tons
			used = append(used, name)
		}
	}
	sort.Strings(used)
	return FrontierPoint{
		Label:          label,
		TotalCost:      math.Round(plan.TotalCost*100) / 100,
		TotalEmissions: math.Round(plan.TotalEmissions*1e6) / 1e6,
		NumSuppliers:   len(used),
		Suppliers:      used,
		AllocTons:      alloc,
	}
}
