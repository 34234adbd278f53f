package recipe

import (
	"context"
	"testing"

	"cookmind/internal/core/matching"
	"cookmind/internal/pkg/common"
	"cookmind/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *MatchService {
	return NewMatchService(matching.NewEngine(matching.DefaultSubstitutionTable()), telemetry.NoopInstruments())
}

func TestMatchService_Score(t *testing.T) {
	svc := newTestService()

	got := svc.Score(context.Background(), common.MatchRequest{
		RecipeIngredients: []string{"kipfilet"},
		Inventory:         []string{"verse kipfilet borst"},
	})
	assert.Equal(t, 100, got.Score)

	empty := svc.Score(context.Background(), common.MatchRequest{Inventory: []string{"kip"}})
	assert.Equal(t, 0, empty.Score)
}

func TestMatchService_Missing(t *testing.T) {
	svc := newTestService()

	got := svc.Missing(context.Background(), common.MatchRequest{
		RecipeIngredients: []string{"kip", "room"},
		Inventory:         []string{"kipfilet"},
	})
	assert.Equal(t, []string{"kip"}, got.Matched)
	assert.Equal(t, []string{"room"}, got.Missing)
}

func TestMatchService_Analyze(t *testing.T) {
	svc := newTestService()

	got := svc.Analyze(context.Background(), common.MatchRequest{
		RecipeIngredients: []string{"room", "pasta", "truffel"},
		Inventory:         []string{"verse pasta"},
	})

	assert.Equal(t, 33, got.Score)
	assert.Equal(t, []string{"pasta"}, got.Matched)
	require.Len(t, got.Missing, 2)

	room := got.Missing[0]
	assert.True(t, room.Found)
	require.Len(t, room.Explanations, 3)
	assert.Equal(t, "kokosmelk", room.Explanations[0].Substitute)
	assert.Equal(t, 85, room.Explanations[0].Confidence)
	assert.Equal(t, matching.GenerateExplanation("room", "kokosmelk"), room.Explanations[0].Text)

	truffel := got.Missing[1]
	assert.False(t, truffel.Found)
	assert.Empty(t, truffel.Substitutes)
	assert.Empty(t, truffel.Explanations)
}

func TestMatchService_Rank(t *testing.T) {
	svc := newTestService()

	got := svc.Rank(context.Background(), common.RankRequest{
		Recipes: []common.RankRecipe{
			{ID: "1", Name: "Zalm uit de oven", Ingredients: []string{"zalm", "citroen"}},
			{ID: "2", Name: "Pasta met room", Ingredients: []string{"pasta", "room"}},
		},
		Inventory: []string{"pasta", "room", "citroen"},
		Limit:     5,
	})

	require.Len(t, got.Recipes, 2)
	assert.Equal(t, "2", got.Recipes[0].ID)
	assert.Equal(t, 100, got.Recipes[0].Score)
	assert.Equal(t, "1", got.Recipes[1].ID)
	assert.Equal(t, 50, got.Recipes[1].Score)
	assert.Equal(t, []string{"zalm"}, got.Recipes[1].Missing)
}

func TestMatchService_Substitutions(t *testing.T) {
	svc := newTestService()

	found := svc.Substitutions(context.Background(), "KIPFILET")
	assert.True(t, found.Found)
	assert.Equal(t, "KIPFILET", found.Ingredient)
	assert.Equal(t, []string{"varkenshaas", "tofu", "kalkoenfilet"}, found.Substitutes)

	missing := svc.Substitutions(context.Background(), "unknown-ingredient-xyz")
	assert.False(t, missing.Found)
	assert.Empty(t, missing.Substitutes)
}

func TestMatchService_Explain(t *testing.T) {
	svc := newTestService()

	got := svc.Explain(context.Background(), common.ExplainRequest{Original: "room", Substitute: "kokosmelk"})
	assert.Equal(t, "room", got.Original)
	assert.Equal(t, "kokosmelk", got.Substitute)
	assert.Equal(t, 85, got.Confidence)
	assert.Equal(t, 2, got.TimeReductionMinutes)
	assert.Contains(t, got.Text, "85")
}

func TestMatchService_NilMetrics(t *testing.T) {
	svc := NewMatchService(matching.NewEngine(nil), nil)
	assert.Equal(t, 0, svc.TableSize())
	assert.NotPanics(t, func() {
		svc.Score(context.Background(), common.MatchRequest{RecipeIngredients: []string{"kip"}})
	})
}
