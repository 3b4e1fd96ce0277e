package service

import (
	"career_advisor_backend/internal/config"
	"career_advisor_backend/pkg/monitoring"
	"career_advisor_backend/pkg/tracing"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"
)

const providerGemini = "gemini"

// GeminiClient 通过 genai SDK 调用 Gemini
type GeminiClient struct {
	client  *genai.Client
	timeout time.Duration
}

func NewGeminiClient(ctx context.Context, cfg config.AIConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{client: client, timeout: cfg.Timeout()}, nil
}

func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (text string, err error) {
	ctx, span := tracing.Tracer.Start(ctx, "completion.gemini")
	span.SetAttributes(attribute.String("ai.model", req.Model))
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		monitoring.CompletionDuration.WithLabelValues(providerGemini, outcome).Observe(time.Since(start).Seconds())
		span.End()
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.UserPrompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		MaxOutputTokens:   int32(req.MaxTokens),
	})
	if err != nil {
		return "", classifyGeminiError(err)
	}

	return resp.Text(), nil
}

// classifyGeminiError 429 / RESOURCE_EXHAUSTED 视为配额错误
func classifyGeminiError(err error) *CompletionError {
	cerr := &CompletionError{Kind: ErrorKindOther, Provider: providerGemini, Err: err}

	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		apiErr = *apiErrPtr
	default:
		return cerr
	}

	cerr.StatusCode = apiErr.Code
	if apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED" {
		cerr.Kind = ErrorKindQuota
	}
	return cerr
}
