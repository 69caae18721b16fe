package strategy

// BuyNow purchases the entire demand up-front at today's price. It ignores
// simulated noise entirely, so its cost is identical across all simulations.
type BuyNow struct {
	// TodayPrice is the first entry of the baseline path, $/ton.
	TodayPrice float64
}

func (s *BuyNow) Name() string { return "Spot Now" }

func (s *BuyNow) Cost(ctx Context) float64 {
	total := 0.0
	for _, d := range ctx.Demand {
		total += d
	}
	return s.TodayPrice * total
}
