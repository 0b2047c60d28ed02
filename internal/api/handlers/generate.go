package handlers

import (
	"errors"
	"net/http"

	"fx-data-generate/internal/analysis"
	"fx-data-generate/internal/api/models"
	"fx-data-generate/internal/config"
	"fx-data-generate/internal/generate"
	"fx-data-generate/internal/model"

	"github.com/gin-gonic/gin"
)

// GenerateHandler handles generation requests
type GenerateHandler struct{}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler() *GenerateHandler {
	return &GenerateHandler{}
}

// RunGenerate handles POST /api/v1/generate
func (h *GenerateHandler) RunGenerate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	// Overlay the request onto the documented defaults.
	cfg := config.Merge(config.Default(), config.Config{
		StartDate:  req.Config.StartDate,
		EndDate:    req.Config.EndDate,
		StartPrice: req.Config.StartPrice,
		EndPrice:   req.Config.EndPrice,
		Digits:     req.Config.Digits,
		Spread:     req.Config.Spread,
		Density:    req.Config.Density,
		Pattern:    req.Config.Pattern,
		Volatility: req.Config.Volatility,
		Seed:       req.Config.Seed,
	})

	gc, err := cfg.ToGenerate()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    errorCode(err),
				Message: err.Error(),
			},
		})
		return
	}

	series, err := generate.NewSeries(gc)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    errorCode(err),
				Message: err.Error(),
			},
		})
		return
	}

	ticks := series.Collect()
	if req.Options.LimitTicks > 0 && req.Options.LimitTicks < len(ticks) {
		ticks = ticks[:req.Options.LimitTicks]
	}

	response := models.GenerateResponse{
		Status:  "completed",
		Summary: buildSummary(gc, ticks),
	}
	if req.Options.IncludeTicks {
		response.Ticks = convertTicks(ticks)
	}
	c.JSON(http.StatusOK, response)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, model.ErrUnsupportedPattern):
		return "UNSUPPORTED_PATTERN"
	case errors.Is(err, generate.ErrInvalidConfig):
		return "INVALID_CONFIG"
	default:
		return "GENERATION_ERROR"
	}
}

func buildSummary(gc generate.Config, ticks []model.Tick) models.GenerateSummary {
	stats := analysis.Summarize(ticks)
	return models.GenerateSummary{
		Pattern:      string(gc.Pattern),
		TotalTicks:   stats.Count,
		Window:       models.TimeWindow{Start: stats.Start, End: stats.End},
		FirstBid:     stats.FirstBid,
		LastBid:      stats.LastBid,
		MinBid:       stats.MinBid,
		MaxBid:       stats.MaxBid,
		MeanBid:      stats.MeanBid,
		SpreadP95P05: stats.SpreadP95P05,
	}
}

func convertTicks(ticks []model.Tick) []models.TickRow {
	rows := make([]models.TickRow, len(ticks))
	for i, t := range ticks {
		rows[i] = models.TickRow{
			Timestamp: t.Timestamp,
			Bid:       t.Bid,
			Ask:       t.Ask,
			BidVolume: t.BidVolume,
			AskVolume: t.AskVolume,
		}
	}
	return rows
}
