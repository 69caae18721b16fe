package montecarlo

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// priceFloor forbids non-positive simulated prices. Prices at or below zero
// are clamped, not errored: clamping is a stability policy, not a failure.
const priceFloor = 1e-6

// SimulatePaths draws zero-mean Monte Carlo noise around a baseline $/ton
// path. Returns an nSims x H matrix where row s is one realization:
//
//	price[s][m] = baseline[m] * (1 + vol*shock[s][m])
//
// with i.i.d. standard-normal shocks from a generator seeded with seed.
// Identical arguments yield bit-identical matrices; shocks are consumed in
// row-major order so a simulation's row never depends on evaluation order.
func SimulatePaths(baseline []float64, vol float64, nSims int, seed uint64) [][]float64 {
	h := len(baseline)
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}

	prices := make([][]float64, nSims)
	for s := 0; s < nSims; s++ {
		row := make([]float64, h)
		for m := 0; m < h; m++ {
			p := baseline[m] * (1.0 + vol*norm.Rand())
			if p < priceFloor {
				p = priceFloor
			}
			row[m] = p
		}
		prices[s] = row
	}
	return prices
}

// BasisMatrix pre-draws additive basis noise for the hedge strategy: an
// nSims x H matrix of N(mu, sigma) draws. A sigma of zero (or less) means no
// basis divergence and yields an all-zero matrix without consuming the
// random stream.
func BasisMatrix(mu, sigma float64, nSims, h int, seed uint64) [][]float64 {
	basis := make([][]float64, nSims)
	if sigma <= 0 {
		for s := range basis {
			basis[s] = make([]float64, h)
		}
		return basis
	}
	norm := distuv.Normal{Mu: mu, Sigma: sigma, Src: rand.NewSource(seed)}
	for s := 0; s < nSims; s++ {
		row := make([]float64, h)
		for m := 0; m < h; m++ {
			row[m] = norm.Rand()
		}
		basis[s] = row
	}
	return basis
}
