package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fx-data-generate/internal/model"
)

func TestParsePattern(t *testing.T) {
	for _, p := range model.Patterns() {
		got, err := model.ParsePattern(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := model.ParsePattern(" WaVe ")
	require.NoError(t, err)
	assert.Equal(t, model.PatternWave, got)

	_, err = model.ParsePattern("brownian")
	assert.ErrorIs(t, err, model.ErrUnsupportedPattern)
	_, err = model.ParsePattern("")
	assert.ErrorIs(t, err, model.ErrUnsupportedPattern)
}

func TestPattern_Deterministic(t *testing.T) {
	assert.False(t, model.PatternRandom.Deterministic())
	for _, p := range []model.Pattern{model.PatternNone, model.PatternCurve, model.PatternWave, model.PatternZigzag} {
		assert.True(t, p.Deterministic())
	}
}

func TestRoundPrice(t *testing.T) {
	assert.InDelta(t, 1.23457, model.RoundPrice(1.234567, 5), 1e-9)
	assert.InDelta(t, 1.0, model.RoundPrice(1.234567, 0), 1e-9)
	// Prices never reach zero: the floor is one point.
	assert.InDelta(t, 0.00001, model.RoundPrice(-3.0, 5), 1e-12)
	assert.InDelta(t, 1.0, model.RoundPrice(0.2, 0), 1e-9)
}

func TestPoint(t *testing.T) {
	assert.InDelta(t, 1e-5, model.Point(5), 1e-15)
	assert.InDelta(t, 1.0, model.Point(0), 1e-15)
}

func TestVolumesAt(t *testing.T) {
	ts := time.Date(2020, time.January, 1, 12, 30, 0, 0, time.UTC)

	bid, ask := model.VolumesAt(ts, 10)
	assert.GreaterOrEqual(t, bid, 0.0)
	assert.Less(t, bid, 990.0)
	assert.Equal(t, bid+10, ask)

	// Same timestamp, same volumes: no hidden state.
	bid2, ask2 := model.VolumesAt(ts, 10)
	assert.Equal(t, bid, bid2)
	assert.Equal(t, ask, ask2)

	// Oversized spreads degrade to a unit modulus instead of breaking.
	bid, ask = model.VolumesAt(ts, 2000)
	assert.Zero(t, bid)
	assert.Equal(t, 2000.0, ask)
}
