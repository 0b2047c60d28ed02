package model

import (
	"math"
	"time"
)

// Tick represents one generated data point.
// Units:
// - Bid/Ask: price, rounded to the configured number of decimal digits
// - BidVolume/AskVolume: synthetic lot counts derived from the timestamp
type Tick struct {
	Timestamp time.Time
	Bid       float64
	Ask       float64
	BidVolume float64
	AskVolume float64
}

// Point returns the price value of one point at the given precision,
// i.e. 10^-digits. Spread is expressed in points.
func Point(digits int) float64 {
	return math.Pow(10, -float64(digits))
}

// RoundPrice rounds p to digits decimal places and floors the result at
// one point, so generated prices never reach zero or below.
func RoundPrice(p float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	v := math.Round(p*pow) / pow
	if min := 1 / pow; v < min {
		v = min
	}
	return v
}

// VolumesAt derives a bid/ask volume pair from the tick timestamp.
// The divisor cycles with the minute counter so volumes look busy without
// carrying any state between ticks.
func VolumesAt(ts time.Time, spreadPoints int) (bid, ask float64) {
	sec := float64(ts.UnixNano()) / 1e9
	div := float64(int64(sec/60)%1000 + 1)
	mod := 1000.0 - float64(spreadPoints)
	if mod <= 0 {
		mod = 1
	}
	bid = math.Trunc(math.Mod(sec/div, mod))
	return bid, bid + float64(spreadPoints)
}
