package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type AIAdviceController struct {
	AdviceService *service.AdviceService
}

func NewAIAdviceController(adviceService *service.AdviceService) *AIAdviceController {
	return &AIAdviceController{AdviceService: adviceService}
}

// @Summary 生成职业建议
// @Description 不带 question 时生成总体建议，带 question 时回答追问。补全服务不可用时返回模板建议。
// @Tags AI建议
// @Accept json
// @Produce json
// @Param advice body service.CreateAdviceRequest true "职业目标ID与可选追问"
// @Success 201 {object} model.AiAdvice
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /ai-advice [post]
func (c *AIAdviceController) CreateAdvice(ctx *gin.Context) {
	var req service.CreateAdviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, util.FieldErrors(err))
		return
	}

	if req.CareerGoalID == nil || *req.CareerGoalID == 0 {
		util.BadRequest(ctx, "Career goal ID is required")
		return
	}

	advice, err := c.AdviceService.CreateAdvice(ctx.Request.Context(), *req.CareerGoalID, req.Question)
	if err != nil {
		if errors.Is(err, util.ErrCareerGoalNotFound) {
			util.NotFound(ctx, "Career goal not found")
			return
		}
		util.LogInternalError(ctx, err, "Failed to generate AI career advice")
		return
	}

	util.Created(ctx, advice)
}

// @Summary 获取职业目标的建议记录
// @Description 按插入顺序返回，即对话记录
// @Tags AI建议
// @Produce json
// @Param careerGoalId query int true "职业目标ID"
// @Success 200 {array} model.AiAdvice
// @Failure 400 {object} util.ErrorResponse
// @Router /ai-advice [get]
func (c *AIAdviceController) GetAdvice(ctx *gin.Context) {
	careerGoalID, ok := util.ParseID(ctx.Query("careerGoalId"))
	if !ok {
		util.BadRequest(ctx, "Career goal ID is required")
		return
	}

	advice, err := c.AdviceService.GetConversation(careerGoalID)
	if err != nil {
		util.LogInternalError(ctx, err, "Failed to fetch AI advice")
		return
	}

	util.Success(ctx, advice)
}

// @Summary 获取特定ID的建议
// @Tags AI建议
// @Produce json
// @Param id path int true "建议ID"
// @Success 200 {object} model.AiAdvice
// @Failure 404 {object} util.ErrorResponse
// @Router /ai-advice/{id} [get]
func (c *AIAdviceController) GetAdviceByID(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, "AI advice not found")
		return
	}

	advice, err := c.AdviceService.GetAdvice(id)
	if err != nil {
		if errors.Is(err, util.ErrRecordNotFound) {
			util.NotFound(ctx, "AI advice not found")
			return
		}
		util.LogInternalError(ctx, err, "Failed to fetch AI advice")
		return
	}

	util.Success(ctx, advice)
}
