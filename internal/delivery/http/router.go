package http

import (
	"FlowAcademy/internal/catalog"
	"FlowAcademy/internal/delivery/http/controllers"
	"FlowAcademy/internal/delivery/http/controllers/lesson"
	"FlowAcademy/internal/delivery/http/controllers/middleware"
	"FlowAcademy/internal/service"
	"FlowAcademy/pkg/logger"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRoutes(l logger.Log, u service.Collection, cat *catalog.Catalog) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(cors.New(config))

	statusController := controllers.NewStatusHandler()
	catalogController := controllers.NewCatalogHandler(cat)
	workflowController := controllers.NewWorkflowHandler(l)
	contentController := lesson.NewContentHandler(l, u.ContentService, cat)
	quizController := lesson.NewQuizHandler(l, u.QuizService)

	v1 := r.Group("/v1", middleware.LoggingMiddleware(l))
	{
		v1.GET("/status", statusController.Status)
		v1.GET("/modules", catalogController.ListModules)

		lessons := v1.Group("/lessons")
		{
			lessons.POST("/:lesson_id/content", contentController.GenerateContent)
			lessons.GET("/:lesson_id/quiz", quizController.GetState)
			lessons.POST("/:lesson_id/quiz/answer", quizController.SubmitAnswer)
			lessons.POST("/:lesson_id/quiz/score", quizController.GetScore)
		}

		v1.POST("/workflow/render", workflowController.Render)
	}
	return r
}
