package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Everything here is a
// default; API requests and CLI flags override per field.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Sourcing SourcingConfig `yaml:"sourcing"`
}

// AnalysisConfig holds Monte Carlo risk-analysis defaults.
type AnalysisConfig struct {
	Scenario        string  `yaml:"scenario"`
	Months          int     `yaml:"months"`
	BasePricePerTon float64 `yaml:"base_price_per_ton"`
	TotalSteel      float64 `yaml:"total_steel"`
	Sims            int     `yaml:"sims"`
	Vol             float64 `yaml:"vol"`
	HedgeRatio      float64 `yaml:"hedge_ratio"`
	BasisMu         float64 `yaml:"basis_mu"`
	BasisSigma      float64 `yaml:"basis_sigma"`
	Seed            uint64  `yaml:"seed"`
}

// SourcingConfig holds Pareto sweep defaults.
type SourcingConfig struct {
	SuppliersFile string  `yaml:"suppliers_file"`
	DemandTons    float64 `yaml:"demand_tons"`
	Budget        float64 `yaml:"budget"`
	MaxSuppliers  int     `yaml:"max_suppliers"`
	ExactK        bool    `yaml:"exact_k"`
	NPoints       int     `yaml:"n_points"`
}

// Default mirrors the analyzer's stock parameters.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Scenario:        "baseline",
			Months:          12,
			BasePricePerTon: 700.0,
			TotalSteel:      10000.0,
			Sims:            10000,
			Vol:             0.05,
			HedgeRatio:      0.70,
			Seed:            7,
		},
		Sourcing: SourcingConfig{
			MaxSuppliers: 3,
			NPoints:      10,
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the file over the defaults but does not validate.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	a := c.Analysis
	if a.Months <= 0 {
		return errors.New("analysis.months must be positive")
	}
	if a.BasePricePerTon <= 0 {
		return errors.New("analysis.base_price_per_ton must be positive")
	}
	if a.Sims <= 0 {
		return errors.New("analysis.sims must be positive")
	}
	if a.Vol < 0 {
		return errors.New("analysis.vol must be non-negative")
	}
	if a.HedgeRatio < 0 || a.HedgeRatio > 1 {
		return fmt.Errorf("analysis.hedge_ratio must be in [0,1], got %v", a.HedgeRatio)
	}
	if c.Sourcing.NPoints <= 0 {
		return errors.New("sourcing.n_points must be positive")
	}
	if c.Sourcing.MaxSuppliers <= 0 {
		return errors.New("sourcing.max_suppliers must be positive")
	}
	return nil
}
