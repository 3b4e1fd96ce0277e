package service

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
)

type LearningPathService struct {
	Repo *repository.LearningPathRepository
}

func NewLearningPathService(repo *repository.LearningPathRepository) *LearningPathService {
	return &LearningPathService{Repo: repo}
}

type CreateLearningPathRequest struct {
	CareerGoalID *uint       `json:"careerGoalId"`
	Title        string      `json:"title" binding:"required,notblank"`
	Description  string      `json:"description" binding:"required,notblank"`
	Steps        model.Steps `json:"steps" binding:"required,min=4,max=5,dive"`
}

func (s *LearningPathService) CreateLearningPath(req CreateLearningPathRequest) (*model.LearningPath, error) {
	path := &model.LearningPath{
		CareerGoalID: req.CareerGoalID,
		Title:        req.Title,
		Description:  req.Description,
		Steps:        req.Steps,
	}
	if err := s.Repo.Create(path); err != nil {
		return nil, err
	}
	return path, nil
}

// CreateForCareerGoal 按目标文本合成并保存学习路径
func (s *LearningPathService) CreateForCareerGoal(goal *model.CareerGoal) (*model.LearningPath, error) {
	path := SynthesizePath(goal.Goal)
	path.CareerGoalID = &goal.ID
	if err := s.Repo.Create(&path); err != nil {
		return nil, err
	}
	return &path, nil
}

func (s *LearningPathService) GetLearningPath(id uint) (*model.LearningPath, error) {
	return s.Repo.FindByID(id)
}

func (s *LearningPathService) GetByCareerGoal(careerGoalID uint) ([]model.LearningPath, error) {
	return s.Repo.FindByCareerGoalID(careerGoalID)
}
