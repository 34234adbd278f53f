package recipe

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	recipeService "cookmind/internal/core/recipe"
	"cookmind/internal/pkg/common"
)

// Handler 食譜比對處理程序
type Handler struct {
	matchService *recipeService.MatchService
}

// NewHandler 創建新的食譜比對處理程序
func NewHandler(matchService *recipeService.MatchService) *Handler {
	return &Handler{
		matchService: matchService,
	}
}

// RegisterRoutes 註冊比對與替代相關路由
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	matchGroup := api.Group("/match")
	{
		matchGroup.POST("/score", h.HandleScore)
		matchGroup.POST("/missing", h.HandleMissing)
		matchGroup.POST("/analyze", h.HandleAnalyze)
		matchGroup.POST("/rank", h.HandleRank)
	}

	substitutionGroup := api.Group("/substitutions")
	{
		substitutionGroup.GET("", h.HandleSubstitutions)
		substitutionGroup.GET("/:ingredient", h.HandleSubstitutions)
		substitutionGroup.POST("/explain", h.HandleExplain)
	}
}

// bindMatchRequest 解析比對請求，失敗時已寫入錯誤響應
func (h *Handler) bindMatchRequest(c *gin.Context, requestID string) (common.MatchRequest, bool) {
	var req common.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
		)
		respondError(c, common.ErrInvalidRequest, err.Error())
		return req, false
	}
	return req, true
}

// HandleScore 計算食譜相符分數
func (h *Handler) HandleScore(c *gin.Context) {
	requestID := getRequestID(c)

	req, ok := h.bindMatchRequest(c, requestID)
	if !ok {
		return
	}

	response := h.matchService.Score(c.Request.Context(), req)

	common.LogInfo("Recipe score computed",
		zap.String("request_id", requestID),
		zap.Int("score", response.Score),
	)

	c.JSON(http.StatusOK, response)
}

// HandleMissing 列出已具備與缺少的食材
func (h *Handler) HandleMissing(c *gin.Context) {
	requestID := getRequestID(c)

	req, ok := h.bindMatchRequest(c, requestID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.matchService.Missing(c.Request.Context(), req))
}

// HandleAnalyze 分析食譜並附上替代建議
func (h *Handler) HandleAnalyze(c *gin.Context) {
	requestID := getRequestID(c)

	req, ok := h.bindMatchRequest(c, requestID)
	if !ok {
		return
	}

	response := h.matchService.Analyze(c.Request.Context(), req)

	common.LogInfo("Recipe analysis completed",
		zap.String("request_id", requestID),
		zap.Int("score", response.Score),
		zap.Int("missing_count", len(response.Missing)),
	)

	c.JSON(http.StatusOK, response)
}

// HandleRank 依相符分數排序食譜
func (h *Handler) HandleRank(c *gin.Context) {
	requestID := getRequestID(c)

	var req common.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
		)
		respondError(c, common.ErrInvalidRequest, err.Error())
		return
	}

	response := h.matchService.Rank(c.Request.Context(), req)

	common.LogInfo("Recipes ranked",
		zap.String("request_id", requestID),
		zap.Int("candidates", len(req.Recipes)),
		zap.Int("returned", len(response.Recipes)),
	)

	c.JSON(http.StatusOK, response)
}
