package recipe

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"cookmind/internal/pkg/common"
)

// getRequestID 取得請求 ID，沒有時自動生成並寫回響應標頭
func getRequestID(c *gin.Context) string {
	requestID := requestid.Get(c)
	if requestID == "" {
		requestID = c.GetHeader("X-Request-ID")
	}
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// respondError 寫入統一格式的錯誤響應
func respondError(c *gin.Context, err *common.CustomError, details string) {
	c.AbortWithStatusJSON(err.Status, common.ErrorResponse{
		Code:    err.Code,
		Message: err.Message,
		Details: details,
	})
}
