package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("known distribution", func(t *testing.T) {
		costs := []float64{1e6, 2e6, 3e6, 4e6, 5e6}
		s := Summarize(costs)

		require.InDelta(t, 3.0, s.MeanM, 1e-9)
		// Interpolated order stats: pos = q*(n-1).
		require.InDelta(t, 4.8, s.P95M, 1e-9)
		require.InDelta(t, 1.2, s.P05M, 1e-9)
		// Population stdev of {1..5} is sqrt(2).
		require.InDelta(t, math.Sqrt2, s.StdM, 1e-9)
	})

	t.Run("order independent", func(t *testing.T) {
		a := Summarize([]float64{5e6, 1e6, 3e6, 2e6, 4e6})
		b := Summarize([]float64{1e6, 2e6, 3e6, 4e6, 5e6})
		require.InDelta(t, b.MeanM, a.MeanM, 1e-9)
		require.InDelta(t, b.P95M, a.P95M, 1e-9)
		require.InDelta(t, b.P05M, a.P05M, 1e-9)
		require.InDelta(t, b.StdM, a.StdM, 1e-9)
	})

	t.Run("single observation", func(t *testing.T) {
		s := Summarize([]float64{7e6})
		require.InDelta(t, 7.0, s.MeanM, 1e-9)
		require.InDelta(t, 7.0, s.P95M, 1e-9)
		require.InDelta(t, 7.0, s.P05M, 1e-9)
		require.Zero(t, s.StdM)
	})

	t.Run("empty input", func(t *testing.T) {
		require.Equal(t, Summary{}, Summarize(nil))
	})
}

func TestPercentileSorted(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	require.Equal(t, 10.0, percentileSorted(sorted, 0))
	require.Equal(t, 40.0, percentileSorted(sorted, 1))
	require.InDelta(t, 25.0, percentileSorted(sorted, 0.5), 1e-9)
	require.InDelta(t, 11.5, percentileSorted(sorted, 0.05), 1e-9)
	require.InDelta(t, 38.5, percentileSorted(sorted, 0.95), 1e-9)
}
