package config

import (
	"fmt"
	"os"
	"time"

	"fx-data-generate/internal/generate"
	"fx-data-generate/internal/model"

	"gopkg.in/yaml.v3"
)

// DateLayout is the external date format for StartDate/EndDate.
const DateLayout = "2006.01.02"

// Config is the on-disk configuration shape (YAML). All fields map 1:1
// onto the generator config; dates are yyyy.mm.dd strings. Numeric
// fields are pointers so an explicit zero (density: 0, digits: 0) is
// distinguishable from an omitted field and survives merging.
type Config struct {
	OutputFile string   `yaml:"output_file"`
	StartDate  string   `yaml:"start_date"`
	EndDate    string   `yaml:"end_date"`
	StartPrice *float64 `yaml:"start_price"`
	EndPrice   *float64 `yaml:"end_price"`
	Digits     *int     `yaml:"digits"`
	Spread     *int     `yaml:"spread"`
	Density    *float64 `yaml:"density"`
	Pattern    string   `yaml:"pattern"`
	Volatility *float64 `yaml:"volatility"`
	// Seed fixes the random pattern's stream. Omit for clock entropy.
	Seed *int64 `yaml:"seed"`
}

// Default returns the documented defaults: a month of linear data at one
// point per minute.
func Default() Config {
	return Config{
		OutputFile: "data.csv",
		StartDate:  "2020.01.01",
		EndDate:    "2020.01.31",
		StartPrice: floatPtr(1.00),
		EndPrice:   floatPtr(2.00),
		Digits:     intPtr(5),
		Spread:     intPtr(10),
		Density:    floatPtr(1),
		Pattern:    string(model.PatternNone),
		Volatility: floatPtr(1.0),
	}
}

// Load reads a YAML config, overlays it on the defaults and validates it.
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

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	merged := Merge(Default(), c)
	return &merged, nil
}

// Validate checks the config by building the generator config from it.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", generate.ErrInvalidConfig)
	}
	_, err := c.ToGenerate()
	return err
}

// ToGenerate parses dates and the pattern name and returns a validated
// generator config. Unset fields take the documented defaults.
func (c Config) ToGenerate() (generate.Config, error) {
	c = Merge(Default(), c)

	start, err := time.ParseInLocation(DateLayout, c.StartDate, time.UTC)
	if err != nil {
		return generate.Config{}, fmt.Errorf("%w: bad start date %q (want yyyy.mm.dd)", generate.ErrInvalidConfig, c.StartDate)
	}
	end, err := time.ParseInLocation(DateLayout, c.EndDate, time.UTC)
	if err != nil {
		return generate.Config{}, fmt.Errorf("%w: bad end date %q (want yyyy.mm.dd)", generate.ErrInvalidConfig, c.EndDate)
	}
	pattern, err := model.ParsePattern(c.Pattern)
	if err != nil {
		return generate.Config{}, err
	}

	gc := generate.Config{
		StartDate:    start,
		EndDate:      end,
		StartPrice:   *c.StartPrice,
		EndPrice:     *c.EndPrice,
		Digits:       *c.Digits,
		SpreadPoints: *c.Spread,
		Density:      *c.Density,
		Pattern:      pattern,
		Volatility:   *c.Volatility,
		Seed:         c.Seed,
	}
	if err := gc.Validate(); err != nil {
		return generate.Config{}, err
	}
	return gc, nil
}

// Merge overlays set fields from override onto base: non-empty strings
// and non-nil numerics. This is used both for file-over-defaults and for
// CLI flags / API requests over a loaded config.
func Merge(base, override Config) Config {
	out := base
	if override.OutputFile != "" {
		out.OutputFile = override.OutputFile
	}
	if override.StartDate != "" {
		out.StartDate = override.StartDate
	}
	if override.EndDate != "" {
		out.EndDate = override.EndDate
	}
	if override.StartPrice != nil {
		out.StartPrice = override.StartPrice
	}
	if override.EndPrice != nil {
		out.EndPrice = override.EndPrice
	}
	if override.Digits != nil {
		out.Digits = override.Digits
	}
	if override.Spread != nil {
		out.Spread = override.Spread
	}
	if override.Density != nil {
		out.Density = override.Density
	}
	if override.Pattern != "" {
		out.Pattern = override.Pattern
	}
	if override.Volatility != nil {
		out.Volatility = override.Volatility
	}
	if override.Seed != nil {
		out.Seed = override.Seed
	}
	return out
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
