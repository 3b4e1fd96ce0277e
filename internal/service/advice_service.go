package service

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/util"
	"context"
	"errors"
	"fmt"
	"strings"
)

type AdviceService struct {
	GoalRepo   *repository.CareerGoalRepository
	AdviceRepo *repository.AdviceRepository
	Generator  *AdviceGenerator
}

func NewAdviceService(goalRepo *repository.CareerGoalRepository, adviceRepo *repository.AdviceRepository, generator *AdviceGenerator) *AdviceService {
	return &AdviceService{
		GoalRepo:   goalRepo,
		AdviceRepo: adviceRepo,
		Generator:  generator,
	}
}

type CreateAdviceRequest struct {
	CareerGoalID *uint   `json:"careerGoalId"`
	Question     *string `json:"question"`
}

// normalizeQuestion 空白追问视为没有追问
func normalizeQuestion(q *string) *string {
	if q == nil || strings.TrimSpace(*q) == "" {
		return nil
	}
	v := *q
	return &v
}

// CreateAdvice 为职业目标生成并保存一条建议；目标不存在时不写入任何记录
func (s *AdviceService) CreateAdvice(ctx context.Context, careerGoalID uint, question *string) (*model.AiAdvice, error) {
	goal, err := s.GoalRepo.FindByID(careerGoalID)
	if err != nil {
		if errors.Is(err, util.ErrRecordNotFound) {
			return nil, util.ErrCareerGoalNotFound
		}
		return nil, err
	}

	return s.adviseOn(ctx, goal, normalizeQuestion(question))
}

func (s *AdviceService) adviseOn(ctx context.Context, goal *model.CareerGoal, question *string) (*model.AiAdvice, error) {
	advice := &model.AiAdvice{
		CareerGoalID: &goal.ID,
		Question:     question,
		Advice:       s.Generator.Generate(ctx, *goal, question),
	}
	if err := s.AdviceRepo.Create(advice); err != nil {
		return nil, fmt.Errorf("failed to store advice for career goal %d: %w", goal.ID, err)
	}
	return advice, nil
}

func (s *AdviceService) GetAdvice(id uint) (*model.AiAdvice, error) {
	return s.AdviceRepo.FindByID(id)
}

// GetConversation 目标下的全部建议，按插入顺序
func (s *AdviceService) GetConversation(careerGoalID uint) ([]model.AiAdvice, error) {
	return s.AdviceRepo.FindByCareerGoalID(careerGoalID)
}
