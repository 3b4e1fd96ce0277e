package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// 步骤图标，与前端图标表一一对应
const (
	IconBook       = "book"
	IconCode       = "code"
	IconBriefcase  = "briefcase"
	IconAward      = "award"
	IconLayout     = "layout"
	IconPackage    = "package"
	IconWrench     = "wrench"
	IconDatabase   = "database"
	IconBarChart   = "bar-chart-2"
	IconCPU        = "cpu"
	IconTrendingUp = "trending-up"
)

// swagger:model Step
type Step struct {
	Icon        string   `json:"icon" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Skills      []string `json:"skills"`
}

func (s Step) Clone() Step {
	skills := make([]string, len(s.Skills))
	copy(skills, s.Skills)
	s.Skills = skills
	return s
}

// Steps 既可以是 JSON 数组，也可以是内容为该数组的 JSON 字符串；序列化时始终输出数组
type Steps []Step

func (s Steps) Clone() Steps {
	out := make(Steps, len(s))
	for i, step := range s {
		out[i] = step.Clone()
	}
	return out
}

func (s Steps) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Step(s))
}

func (s *Steps) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		data = []byte(encoded)
	}

	var steps []Step
	if err := json.Unmarshal(data, &steps); err != nil {
		return err
	}
	*s = steps
	return nil
}

// swagger:model LearningPath
type LearningPath struct {
	ID           uint      `json:"id"`
	CareerGoalID *uint     `json:"careerGoalId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Steps        Steps     `json:"steps"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (p LearningPath) Clone() LearningPath {
	p.CareerGoalID = cloneUint(p.CareerGoalID)
	p.Steps = p.Steps.Clone()
	return p
}
