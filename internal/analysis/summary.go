package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// Summary reduces a per-simulation cost vector to the numbers a procurement
// desk actually compares, all expressed in millions of dollars.
type Summary struct {
	MeanM float64 `json:"mean_$M"`
	P95M  float64 `json:"p95_$M"`
	P05M  float64 `json:"p05_$M"`
	StdM  float64 `json:"std_$M"`
}

// Summarize computes mean, 5th/95th percentiles and population stdev of a
// raw-dollar cost vector, scaled to $M. Percentiles use linear interpolation
// between order statistics.
func Summarize(costs []float64) Summary {
	if len(costs) == 0 {
		return Summary{}
	}
	mean, _ := stats.Mean(costs)
	std, _ := stats.StandardDeviation(costs)

	sorted := make([]float64, len(costs))
	copy(sorted, costs)
	sort.Float64s(sorted)

	return Summary{
		MeanM: mean / 1e6,
		P95M:  percentileSorted(sorted, 0.95) / 1e6,
		P05M:  percentileSorted(sorted, 0.05) / 1e6,
		StdM:  std / 1e6,
	}
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
