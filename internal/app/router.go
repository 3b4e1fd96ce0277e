package app

import (
	"career_advisor_backend/docs"
	"career_advisor_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		a.registerCareerRoutes(api, c)
		a.registerAdviceRoutes(api, c)
	}
}

func (a *App) registerCareerRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/career-goals", c.careerGoal.CreateCareerGoal)
	rg.GET("/career-goals", c.careerGoal.GetCareerGoals)
	rg.GET("/career-goals/:id", c.careerGoal.GetCareerGoal)

	rg.POST("/learning-paths", c.learningPath.CreateLearningPath)
	rg.GET("/learning-paths", c.learningPath.GetLearningPaths)
	rg.GET("/learning-paths/:id", c.learningPath.GetLearningPath)

	// 服务端一次完成目标、学习路径与首条建议
	rg.POST("/career-plans", c.careerPlan.CreateCareerPlan)
}

func (a *App) registerAdviceRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/ai-advice", c.aiAdvice.CreateAdvice)
	rg.GET("/ai-advice", c.aiAdvice.GetAdvice)
	rg.GET("/ai-advice/:id", c.aiAdvice.GetAdviceByID)
}
