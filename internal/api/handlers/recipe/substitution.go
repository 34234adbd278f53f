package recipe

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cookmind/internal/pkg/common"
)

// HandleSubstitutions 查詢單一食材的替代建議
// 食材可放在路徑或 ?ingredient= 查詢參數；含 "/" 或空白名稱只能用查詢參數。
// 查無結果（包含空名稱）時仍回傳 200，以 found=false 表示。
func (h *Handler) HandleSubstitutions(c *gin.Context) {
	requestID := getRequestID(c)
	ingredient, ok := c.Params.Get("ingredient")
	if !ok {
		ingredient = c.Query("ingredient")
	}

	response := h.matchService.Substitutions(c.Request.Context(), ingredient)

	common.LogInfo("Substitution lookup",
		zap.String("request_id", requestID),
		zap.String("ingredient", ingredient),
		zap.Bool("found", response.Found),
	)

	c.JSON(http.StatusOK, response)
}

// HandleExplain 產生替代說明
func (h *Handler) HandleExplain(c *gin.Context) {
	requestID := getRequestID(c)

	var req common.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		respondError(c, common.ErrInvalidRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, h.matchService.Explain(c.Request.Context(), req))
}
