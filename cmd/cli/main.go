package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"fx-data-generate/internal/analysis"
	"fx-data-generate/internal/config"
	"fx-data-generate/internal/generate"
	"fx-data-generate/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "generate":
		cmdGenerate(os.Args[2:])
	case "stats":
		cmdStats(os.Args[2:])
	case "patterns":
		cmdPatterns()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli generate --start 2020.01.01 --end 2020.01.31 --start-price 1.0 --end-price 2.0 --out data.csv")
	fmt.Println("  cli generate --config examples/config.yaml --pattern wave --volatility 0.5")
	fmt.Println("  cli stats --pattern random --seed 42")
	fmt.Println("  cli patterns")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - generate writes timestamp,bid,ask,bidVolume,askVolume CSV rows")
	fmt.Println("  - flags override values from --config, which override the defaults")
}

func generateFlags(fs *flag.FlagSet) (resolve func() config.Config) {
	cfgPath := fs.String("config", "", "Path to YAML config")
	out := fs.String("out", "", "Output CSV path")
	start := fs.String("start", "", "Start date (yyyy.mm.dd)")
	end := fs.String("end", "", "End date (yyyy.mm.dd), inclusive")
	startPrice := fs.Float64("start-price", 0, "Starting bid price")
	endPrice := fs.Float64("end-price", 0, "Ending bid price")
	digits := fs.Int("digits", 0, "Decimal digits of prices")
	spread := fs.Int("spread", 0, "Bid/ask spread in points")
	density := fs.Float64("density", 0, "Data points per minute")
	pattern := fs.String("pattern", "", "Modeling pattern: none|curve|random|wave|zigzag")
	volatility := fs.Float64("volatility", 0, "Volatility factor")
	seed := fs.Int64("seed", 0, "Random seed (random pattern only)")

	resolve = func() config.Config {
		base := config.Default()
		if *cfgPath != "" {
			loaded, err := config.LoadUnchecked(*cfgPath)
			if err != nil {
				fatal(err)
			}
			base = *loaded
		}
		// Only flags the user actually set override the config, so
		// explicit zero values (e.g. --digits 0) work.
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "out":
				base.OutputFile = *out
			case "start":
				base.StartDate = *start
			case "end":
				base.EndDate = *end
			case "start-price":
				base.StartPrice = startPrice
			case "end-price":
				base.EndPrice = endPrice
			case "digits":
				base.Digits = digits
			case "spread":
				base.Spread = spread
			case "density":
				base.Density = density
			case "pattern":
				base.Pattern = *pattern
			case "volatility":
				base.Volatility = volatility
			case "seed":
				base.Seed = seed
			}
		})
		return base
	}
	return resolve
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	resolve := generateFlags(fs)
	n := fs.Int("n", 0, "Optional: limit to first N ticks (0=all)")
	_ = fs.Parse(args)

	cfg := resolve()
	gc, err := cfg.ToGenerate()
	if err != nil {
		fatal(err)
	}

	series, err := generate.NewSeries(gc)
	if err != nil {
		fatal(err)
	}
	if *n > 0 {
		series.Limit(*n)
	}

	// ensure output dir exists
	if dir := filepath.Dir(cfg.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatal(err)
		}
	}
	rows, err := generate.WriteCSV(cfg.OutputFile, series)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", rows, cfg.OutputFile)
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	resolve := generateFlags(fs)
	_ = fs.Parse(args)

	cfg := resolve()
	gc, err := cfg.ToGenerate()
	if err != nil {
		fatal(err)
	}

	series, err := generate.NewSeries(gc)
	if err != nil {
		fatal(err)
	}

	s := analysis.Summarize(series.Collect())
	fmt.Printf("%-10s %s\n", "pattern", gc.Pattern)
	fmt.Printf("%-10s %d\n", "ticks", s.Count)
	if s.Count == 0 {
		return
	}
	fmt.Printf("%-10s %s .. %s\n", "window", s.Start.Format(config.DateLayout+" 15:04:05"), s.End.Format(config.DateLayout+" 15:04:05"))
	fmt.Printf("%-10s %.*f .. %.*f\n", "bid", gc.Digits, s.FirstBid, gc.Digits, s.LastBid)
	fmt.Printf("%-10s %.*f / %.*f / %.*f\n", "min/mean/max", gc.Digits, s.MinBid, gc.Digits, s.MeanBid, gc.Digits, s.MaxBid)
	fmt.Printf("%-10s %.*f\n", "p95-p05", gc.Digits, s.SpreadP95P05)
}

func cmdPatterns() {
	fmt.Printf("%-8s %s\n", "pattern", "deterministic")
	for _, p := range model.Patterns() {
		fmt.Printf("%-8s %v\n", p, p.Deterministic())
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
	os.Exit(1)
}
