package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHedgeCost(t *testing.T) {
	curve := []float64{700, 710, 720}
	path := []float64{650, 760, 730}
	demand := []float64{100, 0, 200}

	t.Run("splits demand between locked and spot tons", func(t *testing.T) {
		s := &Hedge{
			Curve: curve,
			Ratio: 0.7,
			Basis: [][]float64{{5, 5, 5}},
		}
		cost := s.Cost(Context{Sim: 0, Path: path, Demand: demand})

		want := 100*0.7*(700+5) + 100*0.3*650 +
			200*0.7*(720+5) + 200*0.3*730
		require.InDelta(t, want, cost, 1e-9)
	})

	t.Run("ratio zero is pure spot", func(t *testing.T) {
		s := &Hedge{Curve: curve, Ratio: 0, Basis: [][]float64{{0, 0, 0}}}
		spot := (&SpotLater{}).Cost(Context{Path: path, Demand: demand})
		require.InDelta(t, spot, s.Cost(Context{Sim: 0, Path: path, Demand: demand}), 1e-9)
	})

	t.Run("ratio one ignores the spot path", func(t *testing.T) {
		s := &Hedge{Curve: curve, Ratio: 1, Basis: [][]float64{{0, 0, 0}}}
		a := s.Cost(Context{Sim: 0, Path: path, Demand: demand})
		b := s.Cost(Context{Sim: 0, Path: []float64{1, 1, 1}, Demand: demand})
		require.Equal(t, a, b)
		require.InDelta(t, 100*700+200*720, a, 1e-9)
	})

	t.Run("basis row follows the simulation index", func(t *testing.T) {
		s := &Hedge{
			Curve: []float64{700},
			Ratio: 1,
			Basis: [][]float64{{0}, {10}},
		}
		d := []float64{100}
		base := s.Cost(Context{Sim: 0, Path: []float64{700}, Demand: d})
		bumped := s.Cost(Context{Sim: 1, Path: []float64{700}, Demand: d})
		require.InDelta(t, 100*10, bumped-base, 1e-9)
	})
}
