package model

import "time"

// swagger:model CareerGoal
type CareerGoal struct {
	ID              uint      `json:"id"`
	UserID          *uint     `json:"userId"`
	Goal            string    `json:"goal"`
	Skills          string    `json:"skills"` // 逗号分隔的自由文本
	ExperienceLevel string    `json:"experienceLevel"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (g CareerGoal) Clone() CareerGoal {
	g.UserID = cloneUint(g.UserID)
	return g
}
