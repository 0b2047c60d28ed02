package models

import "time"

// GenerateResponse represents the response from a generation run
type GenerateResponse struct {
	Status  string          `json:"status"`
	Summary GenerateSummary `json:"summary"`
	Ticks   []TickRow       `json:"ticks,omitempty"`
}

// GenerateSummary contains aggregated series statistics
type GenerateSummary struct {
	Pattern      string     `json:"pattern"`
	TotalTicks   int        `json:"total_ticks"`
	Window       TimeWindow `json:"window"`
	FirstBid     float64    `json:"first_bid"`
	LastBid      float64    `json:"last_bid"`
	MinBid       float64    `json:"min_bid"`
	MaxBid       float64    `json:"max_bid"`
	MeanBid      float64    `json:"mean_bid"`
	SpreadP95P05 float64    `json:"spread_p95_p05"`
}

// TimeWindow represents a time range
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TickRow represents one generated tick
type TickRow struct {
	Timestamp time.Time `json:"timestamp"`
	Bid       float64   `json:"bid"`
	Ask       float64   `json:"ask"`
	BidVolume float64   `json:"bid_volume"`
	AskVolume float64   `json:"ask_volume"`
}

// PatternInfo describes one modeling pattern
type PatternInfo struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Deterministic bool   `json:"deterministic"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
