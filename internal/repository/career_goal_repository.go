package repository

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/util"
	"time"
)

// CareerGoalRepository 职业目标的数据访问
type CareerGoalRepository struct {
	goals *table[model.CareerGoal]
}

func NewCareerGoalRepository(db *MemoryDB) *CareerGoalRepository {
	return &CareerGoalRepository{goals: db.careerGoals}
}

// Create 分配 ID 与创建时间，并回填到 goal
func (r *CareerGoalRepository) Create(goal *model.CareerGoal) error {
	created, err := r.goals.insert(func(id uint, now time.Time) (model.CareerGoal, error) {
		row := goal.Clone()
		row.ID = id
		row.CreatedAt = now
		row.UserID = normalizeID(goal.UserID)
		return row, nil
	})
	if err != nil {
		return err
	}
	*goal = created
	return nil
}

func (r *CareerGoalRepository) FindByID(id uint) (*model.CareerGoal, error) {
	goal, ok := r.goals.get(id)
	if !ok {
		return nil, util.ErrRecordNotFound
	}
	return &goal, nil
}

// FindByUserID 按创建顺序返回用户的全部职业目标
func (r *CareerGoalRepository) FindByUserID(userID uint) ([]model.CareerGoal, error) {
	return r.goals.filter(func(g model.CareerGoal) bool {
		return sameID(g.UserID, userID)
	}), nil
}
