package procurement

import (
	"fmt"

	"steel-procurement/internal/analysis"
	"steel-procurement/internal/montecarlo"
	"steel-procurement/internal/strategy"
)

// Inputs are the pre-resolved numeric inputs to one analysis run. The engine
// never fetches anything itself: the baseline path comes from the forecast
// collaborator, demand from model.NewDemandProfile.
type Inputs struct {
	// Baseline is the $/ton forecast path, length H. Also used as the hedge
	// curve unless HedgeCurve is set.
	Baseline []float64

	// Demand is tons per delivery month, length H.
	Demand []float64

	// HedgeCurve optionally replaces the baseline as the locked price series.
	HedgeCurve []float64

	Sims       int
	Vol        float64
	HedgeRatio float64
	BasisMu    float64
	BasisSigma float64
	Seed       uint64
}

// Result holds per-strategy outcomes in strategy evaluation order.
type Result struct {
	Strategies []string
	// Costs[name] is the length-Sims raw-dollar cost vector.
	Costs map[string][]float64
	// Summaries[name] reduces the vector to $M statistics.
	Summaries map[string]analysis.Summary
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run simulates price paths around the baseline and scores the four
// procurement strategies against every path.
func (e *Engine) Run(in Inputs) (*Result, error) {
	h := len(in.Baseline)
	if h == 0 {
		return nil, fmt.Errorf("baseline path is empty")
	}
	if len(in.Demand) != h {
		return nil, fmt.Errorf("demand length %d does not match horizon %d", len(in.Demand), h)
	}
	if in.Sims <= 0 {
		return nil, fmt.Errorf("sims must be positive, got %d", in.Sims)
	}
	if in.HedgeRatio < 0 || in.HedgeRatio > 1 {
		return nil, fmt.Errorf("hedge_ratio must be in [0,1], got %v", in.HedgeRatio)
	}
	for m, p := range in.Baseline {
		if p <= 0 {
			return nil, fmt.Errorf("baseline price at month %d is not positive: %v", m, p)
		}
	}

	curve := in.HedgeCurve
	if curve == nil {
		curve = in.Baseline
	}
	if len(curve) != h {
		return nil, fmt.Errorf("hedge curve length %d does not match horizon %d", len(curve), h)
	}

	// All randomness is drawn up-front: shocks from seed, basis from seed+1.
	// Strategy evaluation is then pure, so per-simulation results are
	// bit-identical no matter how the loops below are scheduled.
	prices := montecarlo.SimulatePaths(in.Baseline, in.Vol, in.Sims, in.Seed)
	basis := montecarlo.BasisMatrix(in.BasisMu, in.BasisSigma, in.Sims, h, in.Seed+1)

	strategies := []strategy.Strategy{
		&strategy.BuyNow{TodayPrice: in.Baseline[0]},
		&strategy.SpotLater{},
		strategy.NewLadder(h),
		&strategy.Hedge{Curve: curve, Ratio: in.HedgeRatio, Basis: basis},
	}

	res := &Result{
		Costs:     make(map[string][]float64, len(strategies)),
		Summaries: make(map[string]analysis.Summary, len(strategies)),
	}
	for _, strat := range strategies {
		name := strat.Name()
		res.Strategies = append(res.Strategies, name)

		costs := make([]float64, in.Sims)
		if bn, ok := strat.(*strategy.BuyNow); ok {
			// Constant across simulations by construction; no need to
			// walk the price matrix.
			c := bn.Cost(strategy.Context{Demand: in.Demand})
			for s := range costs {
				costs[s] = c
			}
		} else {
			for s := 0; s < in.Sims; s++ {
				costs[s] = strat.Cost(strategy.Context{
					Sim:    s,
					Path:   prices[s],
					Demand: in.Demand,
				})
			}
		}
		res.Costs[name] = costs
		res.Summaries[name] = analysis.Summarize(costs)
	}
	return res, nil
}
