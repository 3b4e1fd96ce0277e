package service

import (
	"career_advisor_backend/internal/config"
	"context"
	"errors"
	"fmt"
)

// CompletionRequest 外部补全服务的一次请求：系统指令 + 用户提示 + 输出长度上限
type CompletionRequest struct {
	Model             string
	SystemInstruction string
	UserPrompt        string
	MaxTokens         int
}

// CompletionClient 外部文本补全服务
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type ErrorKind int

const (
	ErrorKindOther ErrorKind = iota
	// ErrorKindQuota 配额耗尽或被限流，调用方降级为模板建议
	ErrorKindQuota
)

func (k ErrorKind) String() string {
	if k == ErrorKindQuota {
		return "quota"
	}
	return "other"
}

// CompletionError 屏蔽各服务商的错误结构，只暴露分类
type CompletionError struct {
	Kind       ErrorKind
	Provider   string
	StatusCode int
	Err        error
}

func (e *CompletionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s completion failed (%s, status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s completion failed (%s): %v", e.Provider, e.Kind, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

func IsQuotaError(err error) bool {
	var cerr *CompletionError
	return errors.As(err, &cerr) && cerr.Kind == ErrorKindQuota
}

// NewCompletionClient 按配置创建补全客户端；未配置凭证时返回 nil，只走模板建议
func NewCompletionClient(ctx context.Context, cfg config.AIConfig) (CompletionClient, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderOpenAI, "":
		return NewOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported ai provider %q", cfg.Provider)
	}
}
