package app

import (
	"pawlearn_backend/docs"
	"pawlearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", func(ctx *gin.Context) {
		ctx.String(200, "Animal Adoption API running")
	})

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// Adoption board
		api.GET("/animals", c.animal.List)
		api.GET("/animals/:id", c.animal.Get)
		api.POST("/animals", c.animal.Create)
		api.PUT("/animals/:id", c.animal.Update)
		api.DELETE("/animals/:id", c.animal.Delete)

		// Learning content
		api.GET("/courses", c.content.ListCourses)
		api.GET("/courses/:courseId/lessons", c.content.ListLessons)
		api.GET("/courses/:courseId/quiz", c.quiz.GetByCourse)
		api.GET("/lessons/:lessonId", c.content.GetLesson)
		api.GET("/lessons/:lessonId/steps", c.content.ListSteps)

		// Lesson progress
		api.POST("/lesson-progress", c.progress.MarkStepComplete)

		// Quizzes
		api.GET("/quizzes/standalone", c.quiz.GetStandalone)
		api.GET("/quizzes/:quizId", c.quiz.Get)
		api.GET("/quizzes/:quizId/questions", c.quiz.Questions)
		api.POST("/quizzes/:quizId/attempt", c.quiz.Attempt)
		api.POST("/quizzes/:quizId/submit", c.quiz.Submit)

		// Progress dashboards
		api.GET("/progress/lessons/:userId", c.dashboard.LessonCompletions)
		api.GET("/progress/quizzes/:userId", c.dashboard.QuizAttempts)
		api.GET("/progress/badges/:userId", c.dashboard.EarnedBadges)
	}
}
