package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// CareerGoalController 处理职业目标的API请求

type CareerGoalController struct {
	CareerGoalService *service.CareerGoalService
}

func NewCareerGoalController(careerGoalService *service.CareerGoalService) *CareerGoalController {
	return &CareerGoalController{CareerGoalService: careerGoalService}
}

// @Summary 创建职业目标
// @Description 保存用户的职业目标、现有技能与经验水平
// @Tags 职业目标
// @Accept json
// @Produce json
// @Param goal body service.CreateCareerGoalRequest true "职业目标信息"
// @Success 201 {object} model.CareerGoal
// @Failure 400 {object} util.ErrorResponse
// @Router /career-goals [post]
func (c *CareerGoalController) CreateCareerGoal(ctx *gin.Context) {
	var req service.CreateCareerGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, util.FieldErrors(err))
		return
	}

	goal, err := c.CareerGoalService.CreateCareerGoal(req)
	if err != nil {
		util.LogInternalError(ctx, err, "Failed to create career goal")
		return
	}

	util.Created(ctx, goal)
}

// @Summary 获取用户的职业目标
// @Description 按创建顺序返回用户的全部职业目标
// @Tags 职业目标
// @Produce json
// @Param userId query int true "用户ID"
// @Success 200 {array} model.CareerGoal
// @Failure 400 {object} util.ErrorResponse
// @Router /career-goals [get]
func (c *CareerGoalController) GetCareerGoals(ctx *gin.Context) {
	userID, ok := util.ParseID(ctx.Query("userId"))
	if !ok {
		util.BadRequest(ctx, "User ID is required")
		return
	}

	goals, err := c.CareerGoalService.GetUserCareerGoals(userID)
	if err != nil {
		util.LogInternalError(ctx, err, "Failed to fetch career goals")
		return
	}

	util.Success(ctx, goals)
}

// @Summary 获取特定ID的职业目标
// @Tags 职业目标
// @Produce json
// @Param id path int true "职业目标ID"
// @Success 200 {object} model.CareerGoal
// @Failure 404 {object} util.ErrorResponse
// @Router /career-goals/{id} [get]
func (c *CareerGoalController) GetCareerGoal(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, "Career goal not found")
		return
	}

	goal, err := c.CareerGoalService.GetCareerGoal(id)
	if err != nil {
		if errors.Is(err, util.ErrRecordNotFound) {
			util.NotFound(ctx, "Career goal not found")
			return
		}
		util.LogInternalError(ctx, err, "Failed to fetch career goal")
		return
	}

	util.Success(ctx, goal)
}
