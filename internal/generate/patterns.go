package generate

import "math"

// Pattern shapes. Apart from random these are closed-form functions of
// the step index, so a series can be stopped and reconstructed cheaply.

// curveBid eases the trend along an exponential curve. The exponent
// divisor shrinks with volatility, so higher volatility bends harder.
func (s *Series) curveBid(i int) float64 {
	if s.n < 2 || s.cfg.Volatility == 0 {
		return s.linearBid(i)
	}
	d := float64(s.n) / s.cfg.Volatility
	last := math.Exp(float64(s.n-1) / d)
	eased := 1 - (math.Exp(float64(i)/d)-last)/(1-last)
	return s.cfg.StartPrice + eased*(s.cfg.EndPrice-s.cfg.StartPrice)
}

// waveBid overlays one and a half sine periods on the linear trend.
// The absolute value keeps strongly volatile waves above zero.
func (s *Series) waveBid(i int) float64 {
	if s.n < 2 {
		return s.cfg.StartPrice
	}
	t := float64(i) / float64(s.n-1)
	return math.Abs(s.linearBid(i) + s.cfg.Volatility*math.Sin(t*3*math.Pi))
}

// zigzagBid walks alternating ramps: a long climb at a boosted slope,
// then a short decline, netting out to the overall trend per cycle. The
// final decline-length steps are a straight tail that lands exactly on
// the end price.
func (s *Series) zigzagBid(i int) float64 {
	const forward = 500

	n := s.n
	backward := int(s.cfg.Volatility * 50)
	if backward > n-1 {
		backward = n - 1
	}
	if backward < 0 {
		backward = 0
	}

	lift := (s.cfg.EndPrice - s.cfg.StartPrice) / float64(n)
	cycle := forward + backward
	boost := float64(forward+2*backward) / forward

	at := func(j int) float64 {
		c := j / cycle
		rem := j % cycle
		up := math.Min(float64(rem), forward)
		down := math.Max(float64(rem-forward), 0)
		return s.cfg.StartPrice + (float64(c*cycle)+up*boost-down)*lift
	}

	body := n - backward
	if i < body {
		return at(i)
	}
	if backward <= 1 {
		return s.cfg.EndPrice
	}
	p0 := at(body)
	return p0 + float64(i-body)*(s.cfg.EndPrice-p0)/float64(backward-1)
}

// randomBid advances a random walk around the linear trend: each step
// moves by the trend increment plus a zero-mean uniform draw scaled by
// volatility. The last tick is pinned to the end price so the envelope
// always closes.
func (s *Series) randomBid(i int) float64 {
	if i == s.n-1 {
		s.rng.Float64() // keep the stream position identical either way
		return s.cfg.EndPrice
	}
	bid := s.walk
	s.walk += s.step * (1 + (s.rng.Float64()-0.5)*s.cfg.Volatility)
	return bid
}
