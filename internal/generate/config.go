package generate

import (
	"errors"
	"fmt"
	"time"

	"fx-data-generate/internal/model"
)

// ErrInvalidConfig reports a configuration that violates a generation
// invariant. It is returned before any tick is produced; a failed run
// never leaves partial output behind.
var ErrInvalidConfig = errors.New("invalid generation config")

// Config defines one generation run.
// Units:
// - StartDate/EndDate: inclusive calendar dates (midnight UTC)
// - StartPrice/EndPrice: bid prices bounding the trend envelope
// - SpreadPoints: ask-bid distance in units of 10^-Digits
// - Density: data points per minute of simulated time (0 = no output)
// - Volatility: dimensionless amplitude multiplier, 1.0 = baseline
type Config struct {
	StartDate    time.Time
	EndDate      time.Time
	StartPrice   float64
	EndPrice     float64
	Digits       int
	SpreadPoints int
	Density      float64
	Pattern      model.Pattern
	Volatility   float64

	// Seed makes the random pattern reproducible. When nil, the stream is
	// seeded from the clock and runs are not reproducible.
	Seed *int64
}

func (c Config) Validate() error {
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidConfig)
	}
	if c.StartPrice <= 0 || c.EndPrice <= 0 {
		return fmt.Errorf("%w: prices must be > 0", ErrInvalidConfig)
	}
	if c.Digits < 0 {
		return fmt.Errorf("%w: digits must be >= 0", ErrInvalidConfig)
	}
	if c.SpreadPoints < 0 {
		return fmt.Errorf("%w: spread must be >= 0", ErrInvalidConfig)
	}
	if c.Density < 0 {
		return fmt.Errorf("%w: density must be >= 0", ErrInvalidConfig)
	}
	if c.Volatility < 0 {
		return fmt.Errorf("%w: volatility must be >= 0", ErrInvalidConfig)
	}
	if _, err := model.ParsePattern(string(c.Pattern)); err != nil {
		return err
	}
	return nil
}

// Spread returns the bid/ask distance in price units.
func (c Config) Spread() float64 {
	return float64(c.SpreadPoints) * model.Point(c.Digits)
}
