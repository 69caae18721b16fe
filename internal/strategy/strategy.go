package strategy

// Context carries everything a strategy needs to cost one simulated path.
type Context struct {
	// Sim is the simulation index; strategies with pre-drawn randomness
	// (hedge basis) index into it so results don't depend on evaluation order.
	Sim int

	// Path is this simulation's $/ton price path, length H.
	Path []float64

	// Demand is tons required per delivery month, length H.
	Demand []float64
}

// Strategy prices a full demand profile against one simulated path.
type Strategy interface {
	Name() string
	Cost(ctx Context) float64
}
