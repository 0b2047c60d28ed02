package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fx-data-generate/internal/api/handlers"
	"fx-data-generate/internal/api/models"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/generate", handlers.NewGenerateHandler().RunGenerate)
	r.GET("/api/v1/patterns", handlers.NewPatternHandler().ListPatterns)
	return r
}

func postGenerate(t *testing.T, router *gin.Engine, req models.GenerateRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, r)
	return w
}

func TestRunGenerate_FlatDay(t *testing.T) {
	router := newRouter()

	w := postGenerate(t, router, models.GenerateRequest{
		Config: models.GenerateConfig{
			StartDate:  "2020.01.01",
			EndDate:    "2020.01.01",
			StartPrice: floatPtr(1.0),
			EndPrice:   floatPtr(1.0),
			Digits:     intPtr(5),
			Spread:     intPtr(10),
			Density:    floatPtr(1),
			Pattern:    "none",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 1440, resp.Summary.TotalTicks)
	assert.Equal(t, "none", resp.Summary.Pattern)
	assert.InDelta(t, 1.0, resp.Summary.FirstBid, 1e-9)
	assert.InDelta(t, 1.0, resp.Summary.LastBid, 1e-9)
	assert.Empty(t, resp.Ticks)
}

func TestRunGenerate_IncludeTicksWithLimit(t *testing.T) {
	router := newRouter()

	w := postGenerate(t, router, models.GenerateRequest{
		Config: models.GenerateConfig{
			StartDate: "2020.01.01",
			EndDate:   "2020.01.01",
			Pattern:   "wave",
		},
		Options: models.GenerateOptions{IncludeTicks: true, LimitTicks: 5},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Ticks, 5)
	assert.Equal(t, 5, resp.Summary.TotalTicks)
	for _, tick := range resp.Ticks {
		assert.InDelta(t, 0.0001, tick.Ask-tick.Bid, 1e-9)
	}
}

// TestRunGenerate_ExplicitZeroDensity: a request asking for density 0
// must get an empty series back, not the default density.
func TestRunGenerate_ExplicitZeroDensity(t *testing.T) {
	router := newRouter()

	w := postGenerate(t, router, models.GenerateRequest{
		Config:  models.GenerateConfig{Density: floatPtr(0)},
		Options: models.GenerateOptions{IncludeTicks: true},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Summary.TotalTicks)
	assert.Empty(t, resp.Ticks)
}

func TestRunGenerate_UnsupportedPattern(t *testing.T) {
	router := newRouter()

	w := postGenerate(t, router, models.GenerateRequest{
		Config: models.GenerateConfig{Pattern: "sawtooth"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_PATTERN", resp.Error.Code)
}

func TestRunGenerate_InvalidConfig(t *testing.T) {
	router := newRouter()

	w := postGenerate(t, router, models.GenerateRequest{
		Config: models.GenerateConfig{StartDate: "2020.02.01", EndDate: "2020.01.01"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_CONFIG", resp.Error.Code)
}

func TestListPatterns(t *testing.T) {
	router := newRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/patterns", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Patterns []models.PatternInfo `json:"patterns"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Patterns, 5)
	assert.Equal(t, "none", resp.Patterns[0].Name)
	for _, p := range resp.Patterns {
		if p.Name == "random" {
			assert.False(t, p.Deterministic)
		} else {
			assert.True(t, p.Deterministic)
		}
	}
}
