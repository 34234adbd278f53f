package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Analyze(t *testing.T) {
	engine := NewEngine(DefaultSubstitutionTable())

	analysis := engine.Analyze([]string{"kipfilet", "zout", "saffraan"}, []string{"Zout"})

	assert.Equal(t, 33, analysis.Score)
	assert.Equal(t, []string{"zout"}, analysis.Matched)
	require.Len(t, analysis.Missing, 2)

	kip := analysis.Missing[0]
	assert.Equal(t, "kipfilet", kip.Ingredient)
	assert.True(t, kip.Found)
	assert.Equal(t, []string{"varkenshaas", "tofu", "kalkoenfilet"}, kip.Substitutes)
	require.Len(t, kip.Explanations, 3)
	assert.Equal(t, "varkenshaas", kip.Explanations[0].Substitute)
	assert.Equal(t, "kipfilet", kip.Explanations[0].Original)

	saffraan := analysis.Missing[1]
	assert.False(t, saffraan.Found)
	assert.Empty(t, saffraan.Substitutes)
	assert.Empty(t, saffraan.Explanations)
}

func TestEngine_AnalyzeMatchesScore(t *testing.T) {
	engine := NewEngine(DefaultSubstitutionTable())
	recipe := []string{"kip", "ui", "kaas"}
	inventory := []string{"kipfilet", "uien"}

	assert.Equal(t, engine.Score(recipe, inventory), engine.Analyze(recipe, inventory).Score)
}

func TestEngine_AnalyzeEmptyRecipe(t *testing.T) {
	engine := NewEngine(nil)

	analysis := engine.Analyze(nil, []string{"kip"})
	assert.Equal(t, 0, analysis.Score)
	assert.Empty(t, analysis.Matched)
	assert.Empty(t, analysis.Missing)
}

func TestEngine_Rank(t *testing.T) {
	engine := NewEngine(DefaultSubstitutionTable())
	recipes := []Recipe{
		{ID: "b", Name: "Zalm", Ingredients: []string{"zalm"}},
		{ID: "a", Name: "Kip met rijst", Ingredients: []string{"kip", "rijst"}},
		{ID: "d", Name: "Leeg", Ingredients: nil},
		{ID: "c", Name: "Kip met ui", Ingredients: []string{"kip", "ui"}},
	}
	inventory := []string{"kipfilet", "rijst"}

	ids := func(ranked []RankedRecipe) []string {
		out := make([]string, 0, len(ranked))
		for _, r := range ranked {
			out = append(out, r.Recipe.ID)
		}
		return out
	}

	t.Run("sorted by score then fewest missing", func(t *testing.T) {
		ranked := engine.Rank(recipes, inventory, RankOptions{})
		assert.Equal(t, []string{"a", "c", "d", "b"}, ids(ranked))
		assert.Equal(t, 100, ranked[0].Score)
		assert.Equal(t, 50, ranked[1].Score)
		assert.Equal(t, []string{"ui"}, ranked[1].Missing)
	})

	t.Run("min score", func(t *testing.T) {
		ranked := engine.Rank(recipes, inventory, RankOptions{MinScore: 1})
		assert.Equal(t, []string{"a", "c"}, ids(ranked))
	})

	t.Run("limit", func(t *testing.T) {
		ranked := engine.Rank(recipes, inventory, RankOptions{Limit: 1})
		assert.Equal(t, []string{"a"}, ids(ranked))
	})

	t.Run("ties keep input order", func(t *testing.T) {
		ranked := engine.Rank([]Recipe{
			{ID: "x", Ingredients: []string{"kip"}},
			{ID: "y", Ingredients: []string{"rijst"}},
		}, inventory, RankOptions{})
		assert.Equal(t, []string{"x", "y"}, ids(ranked))
	})
}

func TestEngine_Delegates(t *testing.T) {
	engine := NewEngine(DefaultSubstitutionTable())

	assert.Equal(t, 100, engine.Score([]string{"kipfilet"}, []string{"verse kipfilet borst"}))
	assert.Equal(t, []string{NoSuggestion}, engine.SuggestSubstitutions("unknown-ingredient-xyz"))
	assert.True(t, engine.Suggest("kipfilet").Found)
	assert.Equal(t, GenerateExplanation("room", "kokosmelk"), engine.Explain("room", "kokosmelk").Text)
	assert.Equal(t, DefaultSubstitutionTable().Len(), engine.Table().Len())
}
