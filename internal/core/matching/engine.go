package matching

import "sort"

// Recipe 待評分的食譜
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

// MissingIngredient 缺少的食材與其替代建議
type MissingIngredient struct {
	Ingredient   string        `json:"ingredient"`
	Substitutes  []string      `json:"substitutes"`
	Found        bool          `json:"found"`
	Explanations []Explanation `json:"explanations"`
}

// Analysis 單一食譜對庫存的完整分析
type Analysis struct {
	Score   int                 `json:"score"`
	Matched []string            `json:"matched"`
	Missing []MissingIngredient `json:"missing"`
}

// RankOptions 排序篩選條件，Limit <= 0 表示不限制
type RankOptions struct {
	MinScore int
	Limit    int
}

// RankedRecipe 排序後的食譜
type RankedRecipe struct {
	Recipe  Recipe   `json:"recipe"`
	Score   int      `json:"score"`
	Missing []string `json:"missing"`
}

// Engine 組合評分、替代查詢與說明產生
type Engine struct {
	resolver *Resolver
}

// NewEngine 以指定對照表建立引擎
func NewEngine(table *SubstitutionTable) *Engine {
	return &Engine{
		resolver: NewResolver(table),
	}
}

// Score 計算相符百分比
func (e *Engine) Score(recipeIngredients, inventory []string) int {
	return Score(recipeIngredients, inventory)
}

// Suggest 查詢替代食材
func (e *Engine) Suggest(missingIngredient string) Suggestion {
	return e.resolver.Suggest(missingIngredient)
}

// SuggestSubstitutions 查詢替代食材（顯示用）
func (e *Engine) SuggestSubstitutions(missingIngredient string) []string {
	return e.resolver.SuggestSubstitutions(missingIngredient)
}

// Explain 產生替代說明
func (e *Engine) Explain(original, substitute string) Explanation {
	return Explain(original, substitute)
}

// Table 目前使用的對照表
func (e *Engine) Table() *SubstitutionTable {
	return e.resolver.Table()
}

// Analyze 評分並為每個缺少的食材附上替代建議與說明
// 只有真正的替代食材會產生說明。
func (e *Engine) Analyze(recipeIngredients, inventory []string) Analysis {
	matched, missing := partition(recipeIngredients, inventory)

	analysis := Analysis{
		Score:   percentage(len(matched), len(recipeIngredients)),
		Matched: matched,
		Missing: make([]MissingIngredient, 0, len(missing)),
	}

	for _, ingredient := range missing {
		suggestion := e.resolver.Suggest(ingredient)
		item := MissingIngredient{
			Ingredient:   ingredient,
			Substitutes:  suggestion.Substitutes,
			Found:        suggestion.Found,
			Explanations: make([]Explanation, 0, len(suggestion.Substitutes)),
		}
		for _, substitute := range suggestion.Substitutes {
			item.Explanations = append(item.Explanations, Explain(ingredient, substitute))
		}
		analysis.Missing = append(analysis.Missing, item)
	}

	return analysis
}

// Rank 依分數由高到低排序食譜，同分時缺少食材較少者優先，其餘維持原順序
func (e *Engine) Rank(recipes []Recipe, inventory []string, opts RankOptions) []RankedRecipe {
	ranked := make([]RankedRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		matched, missing := partition(recipe.Ingredients, inventory)
		score := percentage(len(matched), len(recipe.Ingredients))
		if score < opts.MinScore {
			continue
		}
		ranked = append(ranked, RankedRecipe{
			Recipe:  recipe,
			Score:   score,
			Missing: missing,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return len(ranked[i].Missing) < len(ranked[j].Missing)
	})

	if opts.Limit > 0 && len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}

	return ranked
}
