package data

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"steel-procurement/internal/model"
)

// LoadSuppliers reads a supplier table CSV with supplier, cost_per_ton and
// co2_per_ton columns.
func LoadSuppliers(path string) ([]model.Supplier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open suppliers file: %w", err)
	}
	defer f.Close()

	var suppliers []model.Supplier
	if err := gocsv.UnmarshalFile(f, &suppliers); err != nil {
		return nil, fmt.Errorf("failed to parse suppliers file: %w", err)
	}
	if err := ValidateSuppliers(suppliers); err != nil {
		return nil, fmt.Errorf("suppliers file %s: %w", path, err)
	}
	return suppliers, nil
}

// ValidateSuppliers checks the table is usable by the sourcing engine:
// names unique and non-empty, rates non-negative.
func ValidateSuppliers(suppliers []model.Supplier) error {
	if len(suppliers) == 0 {
		return fmt.Errorf("no suppliers")
	}
	seen := make(map[string]struct{}, len(suppliers))
	for i, s := range suppliers {
		if s.Name == "" {
			return fmt.Errorf("supplier %d has no name", i)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("duplicate supplier %q", s.Name)
		}
		seen[s.Name] = struct{}{}
		if s.CostPerTon < 0 {
			return fmt.Errorf("supplier %q has negative cost_per_ton", s.Name)
		}
		if s.CO2PerTon < 0 {
			return fmt.Errorf("supplier %q has negative co2_per_ton", s.Name)
		}
	}
	return nil
}

// DefaultSuppliersPath resolves the supplier CSV location.
func DefaultSuppliersPath() string {
	if path := os.Getenv("SUPPLIERS_FILE"); path != "" {
		return path
	}
	return "./examples/suppliers.csv"
}
