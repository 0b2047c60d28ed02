package generate

import (
	"math/rand"
	"time"

	"fx-data-generate/internal/model"
)

// Series is a lazy, single-pass producer of ticks for one Config.
// Ticks come out in non-decreasing timestamp order, starting at
// StartDate 00:00 UTC with a spacing of 60/Density seconds. The series
// is not restartable; construct a new one (same config and seed) to
// reproduce the identical sequence.
type Series struct {
	cfg   Config
	start time.Time
	delta time.Duration
	n     int
	i     int

	// random-walk state, used by the random pattern only
	rng  *rand.Rand
	walk float64
	step float64
}

// NewSeries validates cfg and prepares a series over the implied steps.
// An empty date range or zero density yields a zero-length series, not
// an error.
func NewSeries(cfg Config) (*Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Series{
		cfg:   cfg,
		start: cfg.StartDate,
	}
	if cfg.Density > 0 {
		s.delta = time.Duration(60 * float64(time.Second) / cfg.Density)
		span := cfg.EndDate.AddDate(0, 0, 1).Sub(cfg.StartDate)
		if span > 0 && s.delta > 0 {
			s.n = int((span + s.delta - 1) / s.delta)
		}
	}

	if cfg.Pattern == model.PatternRandom {
		seed := time.Now().UnixNano()
		if cfg.Seed != nil {
			seed = *cfg.Seed
		}
		s.rng = rand.New(rand.NewSource(seed))
		s.walk = cfg.StartPrice
		if s.n > 1 {
			s.step = (cfg.EndPrice - cfg.StartPrice) / float64(s.n-1)
		}
	}
	return s, nil
}

// Len returns the total number of ticks the series will produce.
func (s *Series) Len() int { return s.n }

// Limit caps the remaining production at n ticks. It never extends a
// series, only shortens it.
func (s *Series) Limit(n int) {
	if n < 0 {
		n = 0
	}
	if s.i+n < s.n {
		s.n = s.i + n
	}
}

// Config returns the configuration this series was built from.
func (s *Series) Config() Config { return s.cfg }

// Next produces the next tick. It returns false once the series is
// exhausted; the caller may simply stop calling Next to terminate early.
func (s *Series) Next() (model.Tick, bool) {
	if s.i >= s.n {
		return model.Tick{}, false
	}
	i := s.i
	s.i++

	ts := s.start.Add(time.Duration(i) * s.delta)
	raw := s.bidAt(i)

	bid := model.RoundPrice(raw, s.cfg.Digits)
	ask := model.RoundPrice(bid+s.cfg.Spread(), s.cfg.Digits)

	// The first tick carries unit volume; later ones derive volumes from
	// the timestamp so repeated runs stay reproducible.
	bidVol, askVol := 1.0, 1.0+float64(s.cfg.SpreadPoints)
	if i > 0 {
		bidVol, askVol = model.VolumesAt(ts, s.cfg.SpreadPoints)
	}

	return model.Tick{
		Timestamp: ts,
		Bid:       bid,
		Ask:       ask,
		BidVolume: bidVol,
		AskVolume: askVol,
	}, true
}

// Collect drains the remainder of the series into a slice.
func (s *Series) Collect() []model.Tick {
	out := make([]model.Tick, 0, s.n-s.i)
	for {
		t, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, t)
	}
}

func (s *Series) bidAt(i int) float64 {
	switch s.cfg.Pattern {
	case model.PatternCurve:
		return s.curveBid(i)
	case model.PatternRandom:
		return s.randomBid(i)
	case model.PatternWave:
		return s.waveBid(i)
	case model.PatternZigzag:
		return s.zigzagBid(i)
	default:
		return s.linearBid(i)
	}
}

func (s *Series) linearBid(i int) float64 {
	if s.n < 2 {
		return s.cfg.StartPrice
	}
	t := float64(i) / float64(s.n-1)
	return s.cfg.StartPrice + t*(s.cfg.EndPrice-s.cfg.StartPrice)
}
