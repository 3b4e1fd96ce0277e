package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type LearningPathController struct {
	LearningPathService *service.LearningPathService
}

func NewLearningPathController(learningPathService *service.LearningPathService) *LearningPathController {
	return &LearningPathController{LearningPathService: learningPathService}
}

// @Summary 创建学习路径
// @Description steps 可以是数组，也可以是序列化后的 JSON 字符串
// @Tags 学习路径
// @Accept json
// @Produce json
// @Param path body service.CreateLearningPathRequest true "学习路径"
// @Success 201 {object} model.LearningPath
// @Failure 400 {object} util.ErrorResponse
// @Router /learning-paths [post]
func (c *LearningPathController) CreateLearningPath(ctx *gin.Context) {
	var req service.CreateLearningPathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, util.FieldErrors(err))
		return
	}

	path, err := c.LearningPathService.CreateLearningPath(req)
	if err != nil {
		util.LogInternalError(ctx, err, "Failed to create learning path")
		return
	}

	util.Created(ctx, path)
}

// @Summary 获取职业目标的学习路径
// @Tags 学习路径
// @Produce json
// @Param careerGoalId query int true "职业目标ID"
// @Success 200 {array} model.LearningPath
// @Failure 400 {object} util.ErrorResponse
// @Router /learning-paths [get]
func (c *LearningPathController) GetLearningPaths(ctx *gin.Context) {
	careerGoalID, ok := util.ParseID(ctx.Query("careerGoalId"))
	if !ok {
		util.BadRequest(ctx, "Career goal ID is required")
		return
	}

	paths, err := c.LearningPathService.GetByCareerGoal(careerGoalID)
	if err != nil {
		util.LogInternalError(ctx, err, "Failed to fetch learning paths")
		return
	}

	util.Success(ctx, paths)
}

// @Summary 获取特定ID的学习路径
// @Tags 学习路径
// @Produce json
// @Param id path int true "学习路径ID"
// @Success 200 {object} model.LearningPath
// @Failure 404 {object} util.ErrorResponse
// @Router /learning-paths/{id} [get]
func (c *LearningPathController) GetLearningPath(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, "Learning path not found")
		return
	}

	path, err := c.LearningPathService.GetLearningPath(id)
	if err != nil {
		if errors.Is(err, util.ErrRecordNotFound) {
			util.NotFound(ctx, "Learning path not found")
			return
		}
		util.LogInternalError(ctx, err, "Failed to fetch learning path")
		return
	}

	util.Success(ctx, path)
}
