package analysis

import (
	"math"
	"sort"
	"time"

	"fx-data-generate/internal/model"
)

// SeriesStats is a run-level summary of a generated series. It includes
// raw bid stats plus a p95-p05 spread, which is a quick way to eyeball
// how much a pattern actually moves the price around.
type SeriesStats struct {
	Count int

	Start time.Time
	End   time.Time

	FirstBid float64
	LastBid  float64

	MinBid  float64
	MaxBid  float64
	MeanBid float64
	P05Bid  float64
	P95Bid  float64

	SpreadP95P05 float64
}

// Summarize computes SeriesStats over ticks in production order.
func Summarize(ticks []model.Tick) SeriesStats {
	s := SeriesStats{}
	if len(ticks) == 0 {
		return s
	}
	s.Count = len(ticks)
	s.Start = ticks[0].Timestamp
	s.End = ticks[len(ticks)-1].Timestamp
	s.FirstBid = ticks[0].Bid
	s.LastBid = ticks[len(ticks)-1].Bid

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(ticks))
	for _, t := range ticks {
		v := t.Bid
		vals = append(vals, v)
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	sort.Float64s(vals)
	s.MinBid = minv
	s.MaxBid = maxv
	s.MeanBid = sum / float64(len(vals))
	s.P05Bid = percentileSorted(vals, 0.05)
	s.P95Bid = percentileSorted(vals, 0.95)
	s.SpreadP95P05 = s.P95Bid - s.P05Bid
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
