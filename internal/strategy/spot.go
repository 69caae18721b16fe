package strategy

// SpotLater buys each month's need at that month's simulated spot price.
type SpotLater struct{}

func (s *SpotLater) Name() string { return "Spot Later" }

func (s *SpotLater) Cost(ctx Context) float64 {
	cost := 0.0
	for m, d := range ctx.Demand {
		cost += ctx.Path[m] * d
	}
	return cost
}
