package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Generator *service.AdviceGenerator
}

func NewHealthController(generator *service.AdviceGenerator) *HealthController {
	return &HealthController{Generator: generator}
}

// @Summary 健康检查
// @Description 检查服务状态；ai 为 live 表示已配置补全服务，fallback 表示只使用模板建议
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	aiMode := "fallback"
	if c.Generator.Live() {
		aiMode = "live"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"store": "memory",
			"ai":    aiMode,
		},
	})
}
