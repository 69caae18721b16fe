package procurement

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteSummaryCSV writes one row per strategy with $M statistics.
func WriteSummaryCSV(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"strategy", "mean_$M", "p95_$M", "p05_$M", "std_$M"}); err != nil {
		return err
	}
	for _, name := range res.Strategies {
		s := res.Summaries[name]
		row := []string{
			name,
			fmtFloat(s.MeanM),
			fmtFloat(s.P95M),
			fmtFloat(s.P05M),
			fmtFloat(s.StdM),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteRawCostsCSV writes one row per simulation with raw-dollar costs,
// one column per strategy.
func WriteRawCostsCSV(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(res.Strategies); err != nil {
		return err
	}
	if len(res.Strategies) == 0 {
		return w.Error()
	}
	n := len(res.Costs[res.Strategies[0]])
	row := make([]string, len(res.Strategies))
	for s := 0; s < n; s++ {
		for i, name := range res.Strategies {
			row[i] = fmtFloat(res.Costs[name][s])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
