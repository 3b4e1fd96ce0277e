package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CareerPlanController struct {
	CareerPlanService *service.CareerPlanService
}

func NewCareerPlanController(careerPlanService *service.CareerPlanService) *CareerPlanController {
	return &CareerPlanController{CareerPlanService: careerPlanService}
}

// @Summary 一次生成完整职业规划
// @Description 保存职业目标，按目标合成学习路径，并生成首条建议
// @Tags 职业目标
// @Accept json
// @Produce json
// @Param goal body service.CreateCareerGoalRequest true "职业目标信息"
// @Success 201 {object} service.CareerPlan
// @Failure 400 {object} util.ErrorResponse
// @Router /career-plans [post]
func (c *CareerPlanController) CreateCareerPlan(ctx *gin.Context) {
	var req service.CreateCareerGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, util.FieldErrors(err))
		return
	}

	plan, err := c.CareerPlanService.CreatePlan(ctx.Request.Context(), req)
	if err != nil {
		util.LogInternalError(ctx, err, "Failed to generate career plan")
		return
	}

	util.Created(ctx, plan)
}
