package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"steel-procurement/internal/data"
	"steel-procurement/internal/forecast"
	"steel-procurement/internal/lp"
	"steel-procurement/internal/model"
	"steel-procurement/internal/procurement"
	"steel-procurement/internal/sourcing"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		cmdAnalyze(os.Args[2:])
	case "pareto":
		cmdPareto(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli analyze --index examples/steel_price_index.csv --out results/")
	fmt.Println("  cli pareto --suppliers examples/suppliers.csv --demand 100000 --budget 60000000")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - analyze runs the Monte Carlo risk comparison of the four buying strategies")
	fmt.Println("  - pareto sweeps emission caps to build a cost/emissions trade-off menu")
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	indexPath := fs.String("index", forecast.DefaultIndexPath(), "Path to steel price index CSV")
	scenario := fs.String("scenario", "baseline", "Forecast scenario")
	months := fs.Int("months", 12, "Forecast horizon in months")
	basePrice := fs.Float64("base-price", 700.0, "$/ton when the index reads 100")
	totalSteel := fs.Float64("total-steel", 10000.0, "Total steel required, tons")
	sims := fs.Int("sims", 10000, "Number of Monte Carlo simulations")
	vol := fs.Float64("vol", 0.05, "Monthly volatility (0.05 = 5%)")
	hedgeRatio := fs.Float64("hedge-ratio", 0.70, "Hedged fraction of demand (0..1)")
	basisMu := fs.Float64("basis-mu", 0.0, "Basis mean, $/ton")
	basisSigma := fs.Float64("basis-sigma", 0.0, "Basis stdev, $/ton")
	seed := fs.Uint64("seed", 7, "Random seed")
	outDir := fs.String("out", "results", "Output directory for CSVs")
	_ = fs.Parse(args)

	forecaster, err := forecast.LoadCSV(*indexPath)
	if err != nil {
		panic(err)
	}
	points, err := forecaster.Forecast(*scenario, *months)
	if err != nil {
		panic(err)
	}
	baseline := model.PricePathFromIndex(points, *basePrice)

	demand, err := model.NewDemandProfile(*totalSteel, len(baseline), nil)
	if err != nil {
		panic(err)
	}

	engine := procurement.New()
	res, err := engine.Run(procurement.Inputs{
		Baseline:   baseline,
		Demand:     demand,
		Sims:       *sims,
		Vol:        *vol,
		HedgeRatio: *hedgeRatio,
		BasisMu:    *basisMu,
		BasisSigma: *basisSigma,
		Seed:       *seed,
	})
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}
	summaryPath := filepath.Join(*outDir, "strategy_summary.csv")
	rawPath := filepath.Join(*outDir, "strategy_raw_costs.csv")
	if err := procurement.WriteSummaryCSV(summaryPath, res); err != nil {
		panic(err)
	}
	if err := procurement.WriteRawCostsCSV(rawPath, res); err != nil {
		panic(err)
	}

	fmt.Printf("Strategy cost summary ($ millions), scenario=%s sims=%d vol=%.3f\n", *scenario, *sims, *vol)
	fmt.Printf("%-12s %-10s %-10s %-10s %-10s\n", "strategy", "mean", "p95", "p05", "std")
	for _, name := range res.Strategies {
		s := res.Summaries[name]
		fmt.Printf("%-12s %-10.3f %-10.3f %-10.3f %-10.3f\n", name, s.MeanM, s.P95M, s.P05M, s.StdM)
	}
	fmt.Printf("\nSaved: %s\n", summaryPath)
	fmt.Printf("Saved: %s\n", rawPath)
}

func cmdPareto(args []string) {
	fs := flag.NewFlagSet("pareto", flag.ExitOnError)
	suppliersPath := fs.String("suppliers", data.DefaultSuppliersPath(), "Path to supplier CSV")
	demand := fs.Float64("demand", 0, "Demand in tons (required)")
	budget := fs.Float64("budget", 0, "Budget in $ (required)")
	maxSuppliers := fs.Int("max-suppliers", 3, "Supplier count limit K")
	exactK := fs.Bool("exact-k", false, "Require exactly K suppliers selected")
	nPoints := fs.Int("n-points", 10, "Number of frontier points")
	outPath := fs.String("out", "results/pareto_menu.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *demand <= 0 || *budget <= 0 {
		fmt.Println("--demand and --budget are required")
		os.Exit(2)
	}

	suppliers, err := data.LoadSuppliers(*suppliersPath)
	if err != nil {
		panic(err)
	}

	plans, err := sourcing.BuildFrontier(&lp.SimplexSolver{}, sourcing.Params{
		Suppliers:    suppliers,
		DemandTons:   *demand,
		Budget:       *budget,
		MaxSuppliers: *maxSuppliers,
		ExactK:       *exactK,
	}, *nPoints)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := sourcing.WriteMenuCSV(*outPath, plans); err != nil {
		panic(err)
	}

	fmt.Printf("%-24s %-14s %-14s %-6s %s\n", "label", "cost_$", "emiss_tCO2e", "K", "suppliers")
	for _, p := range plans {
		fmt.Printf("%-24s %-14.2f %-14.6f %-6d %v\n",
			p.Label, p.TotalCost, p.TotalEmissions, p.NumSuppliers, p.Suppliers)
	}
	fmt.Printf("\nWrote %d plans to %s\n", len(plans), *outPath)
}
