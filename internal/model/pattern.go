package model

import (
	"errors"
	"fmt"
	"strings"
)

// Pattern selects how generated prices deviate from the straight-line
// trend between the start and end price.
type Pattern string

const (
	// PatternNone produces a pure linear interpolation, no variation.
	PatternNone Pattern = "none"
	// PatternCurve bends the trend along an exponential easing curve.
	PatternCurve Pattern = "curve"
	// PatternRandom perturbs a random walk around the trend line.
	PatternRandom Pattern = "random"
	// PatternWave overlays a sinusoidal oscillation on the trend line.
	PatternWave Pattern = "wave"
	// PatternZigzag overlays alternating linear ramps (triangular wave).
	PatternZigzag Pattern = "zigzag"
)

// ErrUnsupportedPattern reports a pattern name outside the enumerated set.
var ErrUnsupportedPattern = errors.New("unsupported pattern")

// Patterns lists all supported patterns in presentation order.
func Patterns() []Pattern {
	return []Pattern{PatternNone, PatternCurve, PatternRandom, PatternWave, PatternZigzag}
}

// ParsePattern resolves a case-insensitive pattern name.
func ParsePattern(s string) (Pattern, error) {
	switch Pattern(strings.ToLower(strings.TrimSpace(s))) {
	case PatternNone:
		return PatternNone, nil
	case PatternCurve:
		return PatternCurve, nil
	case PatternRandom:
		return PatternRandom, nil
	case PatternWave:
		return PatternWave, nil
	case PatternZigzag:
		return PatternZigzag, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPattern, s)
	}
}

// Deterministic reports whether the pattern reproduces the same series
// from the config alone, without a random seed.
func (p Pattern) Deterministic() bool {
	return p != PatternRandom
}
