package sourcing

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
)

// WriteMenuCSV writes the trade-off menu, one plan per row.
func WriteMenuCSV(path string, plans []FrontierPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"label", "total_cost_$", "total_emissions_tCO2e", "num_suppliers", "suppliers"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range plans {
		row := []string{
			p.Label,
			strconv.FormatFloat(p.TotalCost, 'f', 2, 64),
			strconv.FormatFloat(p.TotalEmissions, 'f', 6, 64),
			strconv.Itoa(p.NumSuppliers),
			strings.Join(p.Suppliers, ", "),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
