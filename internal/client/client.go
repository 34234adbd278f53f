package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cookmind/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client CookMind 比對服務的 HTTP 客戶端
type Client struct {
	client *resty.Client
}

// New 創建客戶端，baseURL 例如 http://localhost:8080
func New(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL + "/api/v1").
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{client: client}
}

// Score 計算相符分數
func (c *Client) Score(ctx context.Context, req common.MatchRequest) (common.ScoreResponse, error) {
	var result common.ScoreResponse
	err := c.post(ctx, "/match/score", req, &result)
	return result, err
}

// Missing 列出已具備與缺少的食材
func (c *Client) Missing(ctx context.Context, req common.MatchRequest) (common.MissingResponse, error) {
	var result common.MissingResponse
	err := c.post(ctx, "/match/missing", req, &result)
	return result, err
}

// Analyze 完整分析
func (c *Client) Analyze(ctx context.Context, req common.MatchRequest) (common.AnalyzeResponse, error) {
	var result common.AnalyzeResponse
	err := c.post(ctx, "/match/analyze", req, &result)
	return result, err
}

// Rank 依相符分數排序食譜
func (c *Client) Rank(ctx context.Context, req common.RankRequest) (common.RankResponse, error) {
	var result common.RankResponse
	err := c.post(ctx, "/match/rank", req, &result)
	return result, err
}

// Substitutions 查詢替代食材
func (c *Client) Substitutions(ctx context.Context, ingredient string) (common.SubstitutionResponse, error) {
	var result common.SubstitutionResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&common.ErrorResponse{}).
		SetQueryParam("ingredient", ingredient).
		Get("/substitutions")
	if err := checkResponse(resp, err); err != nil {
		return result, err
	}
	return result, nil
}

// Explain 產生替代說明
func (c *Client) Explain(ctx context.Context, req common.ExplainRequest) (common.ExplainResponse, error) {
	var result common.ExplainResponse
	err := c.post(ctx, "/substitutions/explain", req, &result)
	return result, err
}

func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(&common.ErrorResponse{}).
		Post(path)
	return checkResponse(resp, err)
}

// checkResponse 將傳輸錯誤與非 2xx 響應轉為 CustomError
func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		common.LogError("CookMind API request failed", zap.Error(err))
		return common.ErrServiceUnavailable.Wrap(fmt.Errorf("failed to send request: %w", err))
	}

	if resp.IsSuccess() {
		return nil
	}

	apiErr, ok := resp.Error().(*common.ErrorResponse)
	if !ok || apiErr.Code == "" {
		return common.NewError(common.ErrCodeInternalError,
			fmt.Sprintf("unexpected response: %s", http.StatusText(resp.StatusCode())),
			resp.StatusCode(), fmt.Errorf("%s", resp.String()))
	}

	common.LogWarn("CookMind API returned error",
		zap.Int("status", resp.StatusCode()),
		zap.String("code", apiErr.Code),
		zap.String("path", resp.Request.URL),
	)

	var cause error
	if apiErr.Details != "" {
		cause = fmt.Errorf("%s", apiErr.Details)
	}
	return common.NewError(apiErr.Code, apiErr.Message, resp.StatusCode(), cause)
}
