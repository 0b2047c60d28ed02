package handlers

import (
	"net/http"

	"fx-data-generate/internal/api/models"
	"fx-data-generate/internal/model"

	"github.com/gin-gonic/gin"
)

// PatternHandler handles pattern catalog requests
type PatternHandler struct{}

// NewPatternHandler creates a new pattern handler
func NewPatternHandler() *PatternHandler {
	return &PatternHandler{}
}

var patternDescriptions = map[model.Pattern]string{
	model.PatternNone:   "Straight-line interpolation between the start and end price, no variation.",
	model.PatternCurve:  "Smooth exponential bend between the start and end price; volatility controls how hard it bends.",
	model.PatternRandom: "Random walk around the trend line; reproducible when a seed is set.",
	model.PatternWave:   "Sinusoidal oscillation overlaid on the trend line; volatility sets the amplitude.",
	model.PatternZigzag: "Triangular ramps around the trend line with a straight tail onto the end price.",
}

// ListPatterns handles GET /api/v1/patterns
func (h *PatternHandler) ListPatterns(c *gin.Context) {
	patterns := make([]models.PatternInfo, 0, len(patternDescriptions))
	for _, p := range model.Patterns() {
		patterns = append(patterns, models.PatternInfo{
			Name:          string(p),
			Description:   patternDescriptions[p],
			Deterministic: p.Deterministic(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}
