package model

import "time"

// AiAdvice 每次生成建议追加一条，同一 CareerGoalID 下按插入顺序即为对话记录。
// 第一条 Question 为 nil（总体建议），后续为用户追问。
// swagger:model AiAdvice
type AiAdvice struct {
	ID           uint      `json:"id"`
	CareerGoalID *uint     `json:"careerGoalId"`
	Question     *string   `json:"question"`
	Advice       string    `json:"advice"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (a AiAdvice) Clone() AiAdvice {
	a.CareerGoalID = cloneUint(a.CareerGoalID)
	a.Question = cloneString(a.Question)
	return a
}
