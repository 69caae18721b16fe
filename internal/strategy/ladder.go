package strategy

// ladderFracs splits every month's demand into four equal tranches.
var ladderFracs = [4]float64{0.25, 0.25, 0.25, 0.25}

// Ladder spreads each delivery month's demand across four tranches bought at
// scheduled "ladder months". The schedule is derived from the horizon as
// offsets {H-9, H-6, H-3, H-1}, clamped to the horizon.
//
// A tranche whose nominal buy month t falls after the delivery month m
// collapses to m itself — the simulation can't pre-buy after the fact. This
// is a policy choice (not rolling back to the most recent past ladder month);
// the buy-month table below is the single place it lives.
type Ladder struct {
	// buyMonth[m][i] is the effective buy month for delivery month m,
	// tranche i. Precomputed once and reused across all simulations.
	buyMonth [][4]int
}

// NewLadder builds the buy-month table for a horizon of h months.
func NewLadder(h int) *Ladder {
	months := LadderMonths(h)
	table := make([][4]int, h)
	for m := 0; m < h; m++ {
		for i, t := range months {
			buy := t
			if t > m {
				buy = m
			}
			if buy < 0 {
				buy = 0
			}
			if buy > h-1 {
				buy = h - 1
			}
			table[m][i] = buy
		}
	}
	return &Ladder{buyMonth: table}
}

// LadderMonths returns the four nominal tranche months for a horizon of h:
// offsets {h-9, h-6, h-3, h-1}, each floored at 0.
func LadderMonths(h int) [4]int {
	months := [4]int{h - 9, h - 6, h - 3, h - 1}
	for i, t := range months {
		if t < 0 {
			months[i] = 0
		}
	}
	return months
}

func (s *Ladder) Name() string { return "Ladder" }

func (s *Ladder) Cost(ctx Context) float64 {
	cost := 0.0
	for m, d := range ctx.Demand {
		if d <= 0 {
			continue
		}
		for i, frac := range ladderFracs {
			cost += d * frac * ctx.Path[s.buyMonth[m][i]]
		}
	}
	return cost
}
