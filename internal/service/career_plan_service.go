package service

import (
	"career_advisor_backend/internal/model"
	"context"
	"fmt"
)

// CareerPlanService 在服务端一次完成：保存目标 -> 合成学习路径 -> 生成首条建议
type CareerPlanService struct {
	Goals  *CareerGoalService
	Paths  *LearningPathService
	Advice *AdviceService
}

func NewCareerPlanService(goals *CareerGoalService, paths *LearningPathService, advice *AdviceService) *CareerPlanService {
	return &CareerPlanService{
		Goals:  goals,
		Paths:  paths,
		Advice: advice,
	}
}

type CareerPlan struct {
	CareerGoal   *model.CareerGoal   `json:"careerGoal"`
	LearningPath *model.LearningPath `json:"learningPath"`
	Advice       *model.AiAdvice     `json:"advice"`
}

func (s *CareerPlanService) CreatePlan(ctx context.Context, req CreateCareerGoalRequest) (*CareerPlan, error) {
	goal, err := s.Goals.CreateCareerGoal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create career goal: %w", err)
	}

	path, err := s.Paths.CreateForCareerGoal(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create learning path: %w", err)
	}

	advice, err := s.Advice.adviseOn(ctx, goal, nil)
	if err != nil {
		return nil, err
	}

	return &CareerPlan{
		CareerGoal:   goal,
		LearningPath: path,
		Advice:       advice,
	}, nil
}
