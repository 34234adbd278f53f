package recipe

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookmind/internal/core/matching"
	recipeService "cookmind/internal/core/recipe"
	"cookmind/internal/pkg/common"
	"cookmind/internal/telemetry"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	svc := recipeService.NewMatchService(
		matching.NewEngine(matching.DefaultSubstitutionTable()),
		telemetry.NoopInstruments(),
	)
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleScore(t *testing.T) {
	router := setupTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/match/score", common.MatchRequest{
		RecipeIngredients: []string{"kipfilet", "room"},
		Inventory:         []string{"verse kipfilet borst"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp common.ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 50, resp.Score)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandleScore_EmptyLists(t *testing.T) {
	router := setupTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/match/score", `{}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"score":0}`, rec.Body.String())
}

func TestHandleScore_InvalidJSON(t *testing.T) {
	router := setupTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/match/score", `{"recipe_ingredients": "kip"`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, common.ErrCodeInvalidRequest, resp.Code)
}

func TestHandleMissing(t *testing.T) {
	router := setupTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/match/missing", common.MatchRequest{
		RecipeIngredients: []string{"kip", "ui"},
		Inventory:         []string{"kipfilet"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"matched":["kip"],"missing":["ui"]}`, rec.Body.String())
}

func TestHandleAnalyze(t *testing.T) {
	router := setupTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/match/analyze", common.MatchRequest{
		RecipeIngredients: []string{"room", "saffraan"},
		Inventory:         []string{},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp common.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 0, resp.Score)
	assert.Empty(t, resp.Matched)
	require.Len(t, resp.Missing, 2)
	assert.True(t, resp.Missing[0].Found)
	assert.Len(t, resp.Missing[0].Explanations, 3)
	assert.False(t, resp.Missing[1].Found)
	assert.NotNil(t, resp.Missing[1].Substitutes)
}

func TestHandleRank(t *testing.T) {
	router := setupTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/match/rank", common.RankRequest{
		Recipes: []common.RankRecipe{
			{ID: "a", Name: "Omelet", Ingredients: []string{"ei", "kaas"}},
			{ID: "b", Name: "Tosti", Ingredients: []string{"brood", "kaas"}},
		},
		Inventory: []string{"brood", "kaas"},
		MinScore:  60,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp common.RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "b", resp.Recipes[0].ID)
	assert.Equal(t, 100, resp.Recipes[0].Score)
}

func TestHandleRank_InvalidMinScore(t *testing.T) {
	router := setupTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/match/rank", `{"recipes":[],"min_score":150}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSubstitutions(t *testing.T) {
	router := setupTestRouter()

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "known",
			path: "/api/v1/substitutions/KIPFILET",
			want: `{"ingredient":"KIPFILET","substitutes":["varkenshaas","tofu","kalkoenfilet"],"found":true}`,
		},
		{
			name: "unknown",
			path: "/api/v1/substitutions/unknown-ingredient-xyz",
			want: `{"ingredient":"unknown-ingredient-xyz","substitutes":[],"found":false}`,
		},
		{
			name: "query parameter",
			path: "/api/v1/substitutions?ingredient=Room",
			want: `{"ingredient":"Room","substitutes":["kokosmelk","griekse yoghurt","crème fraîche"],"found":true}`,
		},
		{
			name: "query parameter with slash",
			path: "/api/v1/substitutions?ingredient=zout%2Fpeper",
			want: `{"ingredient":"zout/peper","substitutes":[],"found":false}`,
		},
		{
			name: "empty query parameter",
			path: "/api/v1/substitutions?ingredient=",
			want: `{"ingredient":"","substitutes":[],"found":false}`,
		},
		{
			name: "missing query parameter",
			path: "/api/v1/substitutions",
			want: `{"ingredient":"","substitutes":[],"found":false}`,
		},
		{
			name: "escaped space",
			path: "/api/v1/substitutions/zoete%20aardappel",
			want: `{"ingredient":"zoete aardappel","substitutes":[],"found":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestHandleExplain(t *testing.T) {
	router := setupTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/substitutions/explain", common.ExplainRequest{
		Original:   "room",
		Substitute: "kokosmelk",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp common.ExplainResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 85, resp.Confidence)
	assert.Contains(t, resp.Text, "room")
	assert.Contains(t, resp.Text, "kokosmelk")
}

func TestHandleExplain_MissingField(t *testing.T) {
	router := setupTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/substitutions/explain", `{"original":"room"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
