package repository

import (
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/util"
	"strings"
	"time"
)

// AdviceRepository 建议记录只追加，不更新不删除
type AdviceRepository struct {
	advice *table[model.AiAdvice]
}

func NewAdviceRepository(db *MemoryDB) *AdviceRepository {
	return &AdviceRepository{advice: db.advice}
}

func (r *AdviceRepository) Create(advice *model.AiAdvice) error {
	if strings.TrimSpace(advice.Advice) == "" {
		return util.ErrEmptyAdvice
	}

	created, err := r.advice.insert(func(id uint, now time.Time) (model.AiAdvice, error) {
		row := advice.Clone()
		row.ID = id
		row.CreatedAt = now
		row.CareerGoalID = normalizeID(advice.CareerGoalID)
		return row, nil
	})
	if err != nil {
		return err
	}
	*advice = created
	return nil
}

func (r *AdviceRepository) FindByID(id uint) (*model.AiAdvice, error) {
	advice, ok := r.advice.get(id)
	if !ok {
		return nil, util.ErrRecordNotFound
	}
	return &advice, nil
}

// FindByCareerGoalID 按插入顺序返回，即该目标下的对话记录
func (r *AdviceRepository) FindByCareerGoalID(careerGoalID uint) ([]model.AiAdvice, error) {
	return r.advice.filter(func(a model.AiAdvice) bool {
		return sameID(a.CareerGoalID, careerGoalID)
	}), nil
}

func (r *AdviceRepository) Count() int {
	return r.advice.count()
}
