// Package forecast produces scenario-adjusted steel price index paths.
// The index itself is externally fitted; this package only replays the stored
// monthly series and applies scenario multipliers, the same contract the
// risk engine consumes as a pre-resolved baseline.
package forecast

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"steel-procurement/internal/model"
)

// scenarioMultipliers scale the baseline index path per macro scenario.
// Unknown scenarios fall back to 1.0.
var scenarioMultipliers = map[string]float64{
	"baseline":            1.0,
	"tariffs":             1.12,
	"recession":           0.85,
	"infrastructure_boom": 1.08,
	"green_steel":         1.15,
	"tariffs_recession":   0.952,
}

// forecastStart is the first month the projected path is labeled with.
var forecastStart = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

var monthNum = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// Forecaster holds the observed index series, sorted chronologically.
// Construct once in the service layer and pass by reference; it is
// read-only after construction and safe for concurrent use.
type Forecaster struct {
	index []indexObservation
}

type indexObservation struct {
	date  time.Time
	value float64
}

// LoadCSV reads an index CSV with Month, Year and
// Steel_Price_Index_(1982=100) columns.
func LoadCSV(path string) (*Forecaster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse index file: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("index file %s has no data rows", path)
	}

	cols := map[string]int{}
	for i, name := range records[0] {
		cols[name] = i
	}
	monthCol, ok1 := cols["Month"]
	yearCol, ok2 := cols["Year"]
	idxCol, ok3 := cols["Steel_Price_Index_(1982=100)"]
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("index file must contain Month, Year, Steel_Price_Index_(1982=100) columns")
	}

	obs := make([]indexObservation, 0, len(records)-1)
	for _, rec := range records[1:] {
		mon, ok := monthNum[rec[monthCol]]
		if !ok {
			return nil, fmt.Errorf("unknown month %q in index file", rec[monthCol])
		}
		year, err := strconv.Atoi(rec[yearCol])
		if err != nil {
			return nil, fmt.Errorf("bad year %q in index file: %w", rec[yearCol], err)
		}
		val, err := strconv.ParseFloat(rec[idxCol], 64)
		if err != nil {
			return nil, fmt.Errorf("bad index value %q in index file: %w", rec[idxCol], err)
		}
		obs = append(obs, indexObservation{
			date:  time.Date(year, mon, 1, 0, 0, 0, 0, time.UTC),
			value: val,
		})
	}
	sort.Slice(obs, func(i, j int) bool { return obs[i].date.Before(obs[j].date) })
	return &Forecaster{index: obs}, nil
}

// Forecast returns the scenario-adjusted index path for the next months,
// labeled with consecutive months from the forecast start.
func (f *Forecaster) Forecast(scenario string, months int) ([]model.IndexPoint, error) {
	if months <= 0 {
		return nil, fmt.Errorf("months must be positive, got %d", months)
	}
	if months > len(f.index) {
		return nil, fmt.Errorf("only %d index observations available, %d requested", len(f.index), months)
	}
	mult, ok := scenarioMultipliers[scenario]
	if !ok {
		mult = 1.0
	}

	// The projected path is the last `months` observations of the stored
	// series scaled by the scenario multiplier.
	tail := f.index[len(f.index)-months:]
	out := make([]model.IndexPoint, months)
	for i, o := range tail {
		d := forecastStart.AddDate(0, i, 0)
		out[i] = model.IndexPoint{
			Month: int(d.Month()),
			Year:  d.Year(),
			Index: o.value * mult,
		}
	}
	return out, nil
}

// AllScenarios forecasts every known scenario.
func (f *Forecaster) AllScenarios(months int) (map[string][]model.IndexPoint, error) {
	out := make(map[string][]model.IndexPoint, len(scenarioMultipliers))
	for name := range scenarioMultipliers {
		path, err := f.Forecast(name, months)
		if err != nil {
			return nil, err
		}
		out[name] = path
	}
	return out, nil
}

// Scenarios lists the known scenario names, sorted.
func (f *Forecaster) Scenarios() []string {
	names := make([]string, 0, len(scenarioMultipliers))
	for name := range scenarioMultipliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultIndexPath resolves the index CSV location.
func DefaultIndexPath() string {
	if path := os.Getenv("STEEL_INDEX_FILE"); path != "" {
		return path
	}
	return "./examples/steel_price_index.csv"
}
