package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookmind/internal/core/matching"
	"cookmind/internal/core/recipe"
	"cookmind/internal/infrastructure/config"
)

func newRouter(cfg *config.Config, svc *recipe.MatchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if cfg != nil {
			c.Set("config", cfg)
		}
		if svc != nil {
			c.Set("match_service", svc)
		}
		c.Next()
	})
	router.GET("/health", HealthCheck)
	router.GET("/ready", ReadinessCheck)
	router.GET("/live", LivenessCheck)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthCheck(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Version = "1.2.3"
	cfg.Substitution.Source = config.SourceBuiltin
	svc := recipe.NewMatchService(matching.NewEngine(matching.DefaultSubstitutionTable()), nil)

	rec := get(newRouter(cfg, svc), "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	require.NotNil(t, resp.Table)
	assert.Equal(t, config.SourceBuiltin, resp.Table.Source)
	assert.Equal(t, matching.DefaultSubstitutionTable().Len(), resp.Table.Entries)
	assert.Contains(t, resp.Runtime, "goroutines")
}

func TestHealthCheck_MissingConfig(t *testing.T) {
	rec := get(newRouter(nil, nil), "/health")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReadinessCheck(t *testing.T) {
	empty, err := matching.NewSubstitutionTable(nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		svc  *recipe.MatchService
		want int
	}{
		{"default table", recipe.NewMatchService(matching.NewEngine(matching.DefaultSubstitutionTable()), nil), http.StatusOK},
		{"empty table", recipe.NewMatchService(matching.NewEngine(empty), nil), http.StatusServiceUnavailable},
		{"no service", nil, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(newRouter(&config.Config{}, tt.svc), "/ready")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestLivenessCheck(t *testing.T) {
	rec := get(newRouter(nil, nil), "/live")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"alive"}`, rec.Body.String())
}
