package common

// MatchRequest 食譜與庫存比對請求
type MatchRequest struct {
	RecipeIngredients []string `json:"recipe_ingredients"`
	Inventory         []string `json:"inventory"`
}

// ScoreResponse 相符分數
type ScoreResponse struct {
	Score int `json:"score"`
}

// MissingResponse 已具備與缺少的食材
type MissingResponse struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// RankRecipe 待排序的食譜
type RankRecipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

// RankRequest 食譜排序請求
type RankRequest struct {
	Recipes   []RankRecipe `json:"recipes"`
	Inventory []string     `json:"inventory"`
	MinScore  int          `json:"min_score" binding:"min=0,max=100"`
	Limit     int          `json:"limit" binding:"min=0"`
}

// RankedRecipe 排序結果
type RankedRecipe struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	Missing []string `json:"missing"`
}

// RankResponse 食譜排序響應
type RankResponse struct {
	Recipes []RankedRecipe `json:"recipes"`
}

// SubstitutionResponse 替代食材查詢響應
type SubstitutionResponse struct {
	Ingredient  string   `json:"ingredient"`
	Substitutes []string `json:"substitutes"`
	Found       bool     `json:"found"`
}

// ExplainRequest 替代說明請求
type ExplainRequest struct {
	Original   string `json:"original" binding:"required"`
	Substitute string `json:"substitute" binding:"required"`
}

// ExplainResponse 替代說明響應
type ExplainResponse struct {
	Original             string `json:"original"`
	Substitute           string `json:"substitute"`
	Confidence           int    `json:"confidence"`
	TimeReductionMinutes int    `json:"time_reduction_minutes"`
	Text                 string `json:"text"`
}

// MissingIngredient 分析結果中缺少的食材
type MissingIngredient struct {
	Ingredient   string            `json:"ingredient"`
	Substitutes  []string          `json:"substitutes"`
	Found        bool              `json:"found"`
	Explanations []ExplainResponse `json:"explanations"`
}

// AnalyzeResponse 食譜分析響應
type AnalyzeResponse struct {
	Score   int                 `json:"score"`
	Matched []string            `json:"matched"`
	Missing []MissingIngredient `json:"missing"`
}
