package service

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
)

type CareerGoalService struct {
	Repo *repository.CareerGoalRepository
}

func NewCareerGoalService(repo *repository.CareerGoalRepository) *CareerGoalService {
	return &CareerGoalService{Repo: repo}
}

type CreateCareerGoalRequest struct {
	UserID          *uint  `json:"userId"`
	Goal            string `json:"goal" binding:"required,notblank"`
	Skills          string `json:"skills" binding:"required,notblank"`
	ExperienceLevel string `json:"experienceLevel" binding:"required,notblank"`
}

func (s *CareerGoalService) CreateCareerGoal(req CreateCareerGoalRequest) (*model.CareerGoal, error) {
	goal := &model.CareerGoal{
		UserID:          req.UserID,
		Goal:            req.Goal,
		Skills:          req.Skills,
		ExperienceLevel: req.ExperienceLevel,
	}
	if err := s.Repo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *CareerGoalService) GetCareerGoal(id uint) (*model.CareerGoal, error) {
	return s.Repo.FindByID(id)
}

func (s *CareerGoalService) GetUserCareerGoals(userID uint) ([]model.CareerGoal, error) {
	return s.Repo.FindByUserID(userID)
}
