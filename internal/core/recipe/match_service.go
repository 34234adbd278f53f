package recipe

import (
	"context"

	"cookmind/internal/core/matching"
	"cookmind/internal/pkg/common"
	"cookmind/internal/telemetry"

	"go.uber.org/zap"
)

// MatchService 食譜比對服務，將比對引擎的結果轉為 API 格式
type MatchService struct {
	engine  *matching.Engine
	metrics *telemetry.Instruments
}

// NewMatchService 創建食譜比對服務
func NewMatchService(engine *matching.Engine, metrics *telemetry.Instruments) *MatchService {
	if metrics == nil {
		metrics = telemetry.NoopInstruments()
	}
	return &MatchService{
		engine:  engine,
		metrics: metrics,
	}
}

// Score 計算食譜相符分數
func (s *MatchService) Score(ctx context.Context, req common.MatchRequest) common.ScoreResponse {
	score := s.engine.Score(req.RecipeIngredients, req.Inventory)
	s.metrics.RecordScore(ctx, "score", score)

	common.LogDebug("Recipe scored",
		zap.Int("recipe_ingredients", len(req.RecipeIngredients)),
		zap.Int("inventory", len(req.Inventory)),
		zap.Int("score", score),
	)

	return common.ScoreResponse{Score: score}
}

// Missing 列出已具備與缺少的食材
func (s *MatchService) Missing(ctx context.Context, req common.MatchRequest) common.MissingResponse {
	return common.MissingResponse{
		Matched: matching.MatchedIngredients(req.RecipeIngredients, req.Inventory),
		Missing: matching.MissingIngredients(req.RecipeIngredients, req.Inventory),
	}
}

// Analyze 完整分析：分數、缺少食材、替代建議與說明
func (s *MatchService) Analyze(ctx context.Context, req common.MatchRequest) common.AnalyzeResponse {
	analysis := s.engine.Analyze(req.RecipeIngredients, req.Inventory)
	s.metrics.RecordScore(ctx, "analyze", analysis.Score)

	response := common.AnalyzeResponse{
		Score:   analysis.Score,
		Matched: analysis.Matched,
		Missing: make([]common.MissingIngredient, len(analysis.Missing)),
	}

	for i, item := range analysis.Missing {
		s.metrics.RecordSubstitution(ctx, item.Found)

		explanations := make([]common.ExplainResponse, len(item.Explanations))
		for j, explanation := range item.Explanations {
			explanations[j] = toExplainResponse(explanation)
		}
		response.Missing[i] = common.MissingIngredient{
			Ingredient:   item.Ingredient,
			Substitutes:  item.Substitutes,
			Found:        item.Found,
			Explanations: explanations,
		}
	}

	common.LogDebug("Recipe analyzed",
		zap.Int("score", analysis.Score),
		zap.Int("missing", len(analysis.Missing)),
	)

	return response
}

// Rank 依相符分數排序多個食譜
func (s *MatchService) Rank(ctx context.Context, req common.RankRequest) common.RankResponse {
	recipes := make([]matching.Recipe, len(req.Recipes))
	for i, r := range req.Recipes {
		recipes[i] = matching.Recipe{
			ID:          r.ID,
			Name:        r.Name,
			Ingredients: r.Ingredients,
		}
	}

	ranked := s.engine.Rank(recipes, req.Inventory, matching.RankOptions{
		MinScore: req.MinScore,
		Limit:    req.Limit,
	})

	response := common.RankResponse{
		Recipes: make([]common.RankedRecipe, len(ranked)),
	}
	for i, r := range ranked {
		s.metrics.RecordScore(ctx, "rank", r.Score)
		response.Recipes[i] = common.RankedRecipe{
			ID:      r.Recipe.ID,
			Name:    r.Recipe.Name,
			Score:   r.Score,
			Missing: r.Missing,
		}
	}

	common.LogDebug("Recipes ranked",
		zap.Int("candidates", len(req.Recipes)),
		zap.Int("returned", len(ranked)),
	)

	return response
}

// Substitutions 查詢替代食材
func (s *MatchService) Substitutions(ctx context.Context, ingredient string) common.SubstitutionResponse {
	suggestion := s.engine.Suggest(ingredient)
	s.metrics.RecordSubstitution(ctx, suggestion.Found)

	return common.SubstitutionResponse{
		Ingredient:  suggestion.Ingredient,
		Substitutes: suggestion.Substitutes,
		Found:       suggestion.Found,
	}
}

// Explain 產生替代說明
func (s *MatchService) Explain(ctx context.Context, req common.ExplainRequest) common.ExplainResponse {
	return toExplainResponse(s.engine.Explain(req.Original, req.Substitute))
}

// TableSize 替代對照表項目數
func (s *MatchService) TableSize() int {
	return s.engine.Table().Len()
}

func toExplainResponse(e matching.Explanation) common.ExplainResponse {
	return common.ExplainResponse{
		Original:             e.Original,
		Substitute:           e.Substitute,
		Confidence:           e.Confidence,
		TimeReductionMinutes: e.TimeReductionMinutes,
		Text:                 e.Text,
	}
}
