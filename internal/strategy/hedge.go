package strategy

// Hedge locks a fixed fraction of every month's demand at a hedge curve plus
// optional additive basis noise; the remainder is bought at that simulation's
// spot price. The basis matrix is pre-drawn (one row per simulation) so the
// strategy itself is a pure function of the context.
type Hedge struct {
	// Curve is the price series the hedged tons are locked against,
	// equal to the baseline path unless a distinct forward curve is supplied.
	Curve []float64

	// Ratio is the hedged fraction of each month's demand, in [0,1].
	Ratio float64

	// Basis is an nSims x H matrix of additive $/ton noise; all zeros when
	// basis sigma is zero.
	Basis [][]float64
}

func (s *Hedge) Name() string { return "Hedge" }

func (s *Hedge) Cost(ctx Context) float64 {
	basis := s.Basis[ctx.Sim]
	hedged, unhedged := 0.0, 0.0
	for m, d := range ctx.Demand {
		hedgedTons := d * s.Ratio
		unhedgedTons := d - hedgedTons
		hedged += hedgedTons * (s.Curve[m] + basis[m])
		unhedged += unhedgedTons * ctx.Path[m]
	}
	return hedged + unhedged
}
