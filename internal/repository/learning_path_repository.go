package repository

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/util"
	"time"
)

type LearningPathRepository struct {
	paths *table[model.LearningPath]
}

func NewLearningPathRepository(db *MemoryDB) *LearningPathRepository {
	return &LearningPathRepository{paths: db.learningPaths}
}

func (r *LearningPathRepository) Create(path *model.LearningPath) error {
	created, err := r.paths.insert(func(id uint, now time.Time) (model.LearningPath, error) {
		row := path.Clone()
		row.ID = id
		row.CreatedAt = now
		row.CareerGoalID = normalizeID(path.CareerGoalID)
		return row, nil
	})
	if err != nil {
		return err
	}
	*path = created
	return nil
}

func (r *LearningPathRepository) FindByID(id uint) (*model.LearningPath, error) {
	path, ok := r.paths.get(id)
	if !ok {
		return nil, util.ErrRecordNotFound
	}
	return &path, nil
}

func (r *LearningPathRepository) FindByCareerGoalID(careerGoalID uint) ([]model.LearningPath, error) {
	return r.paths.filter(func(p model.LearningPath) bool {
		return sameID(p.CareerGoalID, careerGoalID)
	}), nil
}
