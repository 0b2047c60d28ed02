package models

// GenerateRequest represents the request body for a generation run
type GenerateRequest struct {
	Config  GenerateConfig  `json:"config"`
	Options GenerateOptions `json:"options,omitempty"`
}

// GenerateConfig mirrors the generator configuration. Omitted fields fall
// back to the documented defaults; numeric fields are pointers so an
// explicit zero (e.g. "density": 0) is honored rather than defaulted.
type GenerateConfig struct {
	StartDate  string   `json:"start_date,omitempty"` // yyyy.mm.dd
	EndDate    string   `json:"end_date,omitempty"`   // yyyy.mm.dd
	StartPrice *float64 `json:"start_price,omitempty"`
	EndPrice   *float64 `json:"end_price,omitempty"`
	Digits     *int     `json:"digits,omitempty"`
	Spread     *int     `json:"spread,omitempty"`  // points
	Density    *float64 `json:"density,omitempty"` // points per minute
	Pattern    string   `json:"pattern,omitempty"` // none|curve|random|wave|zigzag
	Volatility *float64 `json:"volatility,omitempty"`
	Seed       *int64   `json:"seed,omitempty"`
}

// GenerateOptions contains optional generation parameters
type GenerateOptions struct {
	LimitTicks   int  `json:"limit_ticks,omitempty"`   // 0 = all
	IncludeTicks bool `json:"include_ticks,omitempty"` // default: false
}
