package service

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/pkg/logger"
	"career_advisor_backend/pkg/monitoring"
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	advisorSystemPrompt = `You are an AI career advisor specialized in providing personalized learning paths and career advice.
    Be insightful, practical, and encouraging. Provide specific, actionable recommendations.`

	EmptyAdviceMessage     = "Sorry, I couldn't generate advice at this moment."
	ServiceFailureMessage  = "I'm sorry, but I couldn't generate career advice at this moment. There might be an issue with the AI service. Please try again later."
	UnexpectedErrorMessage = "I apologize for the inconvenience. An unexpected error occurred while generating your career advice. Please try again later."
	defaultAdviceMaxTokens = 500
)

// AdviceGenerator 生成职业建议。对调用方永不失败：
// 未配置凭证或配额耗尽时返回模板建议，其他错误返回致歉文本。
type AdviceGenerator struct {
	mu        sync.RWMutex
	client    CompletionClient
	model     string
	maxTokens int
}

func NewAdviceGenerator(client CompletionClient, model string, maxTokens int) *AdviceGenerator {
	g := &AdviceGenerator{}
	g.SetClient(client, model, maxTokens)
	return g
}

// SetClient 配置热加载时替换补全客户端，client 为 nil 表示只用模板建议
func (g *AdviceGenerator) SetClient(client CompletionClient, model string, maxTokens int) {
	if maxTokens <= 0 {
		maxTokens = defaultAdviceMaxTokens
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.client = client
	g.model = model
	g.maxTokens = maxTokens
}

func (g *AdviceGenerator) snapshot() (CompletionClient, string, int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.client, g.model, g.maxTokens
}

func buildUserPrompt(goal model.CareerGoal, question *string) string {
	if question != nil {
		return fmt.Sprintf(`I want to become a %s. My current skills are %s and I have %s of experience.
      My question is: %s`, goal.Goal, goal.Skills, goal.ExperienceLevel, *question)
	}
	return fmt.Sprintf(`I want to become a %s. My current skills are %s and I have %s of experience.
      Please provide me with personalized career advice and recommendations for next steps.`, goal.Goal, goal.Skills, goal.ExperienceLevel)
}

// Generate 返回非空建议文本，错误在内部消化，不重试
func (g *AdviceGenerator) Generate(ctx context.Context, goal model.CareerGoal, question *string) (advice string) {
	source := util.AdviceSourceLive
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("Unexpected error generating career advice",
				zap.Any("panic", r),
				zap.Uint("career_goal_id", goal.ID),
			)
			advice, source = UnexpectedErrorMessage, util.AdviceSourceApology
		}
		monitoring.AdviceCounter.WithLabelValues(source).Inc()
	}()

	client, modelName, maxTokens := g.snapshot()
	if client == nil {
		logger.Log.Debug("No completion credential configured, using fallback advice",
			zap.Uint("career_goal_id", goal.ID))
		source = util.AdviceSourceFallback
		return FallbackAdvice(goal, question)
	}

	text, err := client.Complete(ctx, CompletionRequest{
		Model:             modelName,
		SystemInstruction: advisorSystemPrompt,
		UserPrompt:        buildUserPrompt(goal, question),
		MaxTokens:         maxTokens,
	})
	if err != nil {
		if IsQuotaError(err) {
			logger.Log.Warn("Completion quota exceeded, using fallback advice",
				zap.Uint("career_goal_id", goal.ID), zap.Error(err))
			source = util.AdviceSourceFallback
			return FallbackAdvice(goal, question)
		}

		logger.Log.Error("Error calling completion service",
			zap.Uint("career_goal_id", goal.ID), zap.Error(err))
		source = util.AdviceSourceApology
		return ServiceFailureMessage
	}

	// 只含空白的回复与空回复同等处理，否则无法写入记录
	if strings.TrimSpace(text) == "" {
		source = util.AdviceSourceEmpty
		return EmptyAdviceMessage
	}
	return text
}

// Live 是否配置了补全服务
func (g *AdviceGenerator) Live() bool {
	client, _, _ := g.snapshot()
	return client != nil
}
