package service

import (
	"bytes"
	"career_advisor_backend/internal/config"
	"career_advisor_backend/pkg/monitoring"
	"career_advisor_backend/pkg/tracing"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

const providerOpenAI = "openai"

// OpenAIClient 兼容 OpenAI /chat/completions 协议的补全客户端
type OpenAIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewOpenAIClient(cfg config.AIConfig) *OpenAIClient {
	// requests_per_minute 为 0 时不限速
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	return &OpenAIClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		limiter:    limiter,
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model     string          `json:"model"`
	Messages  []AIChatMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *APIErrorBody `json:"error,omitempty"`
}

type APIErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (text string, err error) {
	ctx, span := tracing.Tracer.Start(ctx, "completion.openai")
	span.SetAttributes(attribute.String("ai.model", req.Model))
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		monitoring.CompletionDuration.WithLabelValues(providerOpenAI, outcome).Observe(time.Since(start).Seconds())
		span.End()
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", &CompletionError{Kind: ErrorKindOther, Provider: providerOpenAI, Err: err}
	}

	reqBody := ChatCompletionRequest{
		Model: req.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: req.SystemInstruction},
			{Role: "user", Content: req.UserPrompt},
		},
		MaxTokens: req.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &CompletionError{Kind: ErrorKindOther, Provider: providerOpenAI, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &CompletionError{Kind: ErrorKindOther, Provider: providerOpenAI, Err: err}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &CompletionError{Kind: ErrorKindOther, Provider: providerOpenAI, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &CompletionError{Kind: ErrorKindOther, Provider: providerOpenAI, StatusCode: resp.StatusCode, Err: err}
	}

	var result ChatCompletionResponse
	decodeErr := json.Unmarshal(body, &result)

	if resp.StatusCode != http.StatusOK {
		return "", classifyOpenAIError(resp.StatusCode, result.Error, body)
	}
	if decodeErr != nil {
		return "", &CompletionError{Kind: ErrorKindOther, Provider: providerOpenAI, StatusCode: resp.StatusCode, Err: decodeErr}
	}
	if result.Error != nil {
		return "", classifyOpenAIError(resp.StatusCode, result.Error, body)
	}

	if len(result.Choices) == 0 {
		return "", &CompletionError{Kind: ErrorKindOther, Provider: providerOpenAI, StatusCode: resp.StatusCode, Err: errors.New("AI returned no choices")}
	}

	return result.Choices[0].Message.Content, nil
}

// classifyOpenAIError 429 或 insufficient_quota 视为配额错误，其余为普通错误
func classifyOpenAIError(status int, apiErr *APIErrorBody, body []byte) *CompletionError {
	kind := ErrorKindOther
	if status == http.StatusTooManyRequests {
		kind = ErrorKindQuota
	}

	var cause error
	if apiErr != nil {
		if apiErr.Code == "insufficient_quota" || apiErr.Type == "insufficient_quota" {
			kind = ErrorKindQuota
		}
		cause = fmt.Errorf("AI API error: %s", apiErr.Message)
	} else {
		cause = fmt.Errorf("AI API error: %s", string(body))
	}

	return &CompletionError{Kind: kind, Provider: providerOpenAI, StatusCode: status, Err: cause}
}
