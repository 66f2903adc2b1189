package lesson

import (
	"FlowAcademy/internal/app_errors"
	"FlowAcademy/internal/models"
	"FlowAcademy/pkg/logger"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// generationFailedMessage is the only thing callers see when generation
// fails; provider and parser details stay in the logs.
const generationFailedMessage = "Failed to generate lesson content from AI. Please check your API key and network connection."

type ContentService interface {
	Generate(ctx context.Context, lessonTitle string) (*models.GeneratedLessonContent, error)
}

type lessonCatalog interface {
	LessonByID(id string) (models.Lesson, bool)
}

type ContentHandler struct {
	log     logger.Log
	service ContentService
	catalog lessonCatalog
}

func NewContentHandler(log logger.Log, service ContentService, catalog lessonCatalog) *ContentHandler {
	return &ContentHandler{log: log, service: service, catalog: catalog}
}

// GenerateContent produces fresh lesson content for the lesson in the path.
// Each call is an independent generation attempt; retrying is just calling
// again.
func (h *ContentHandler) GenerateContent(c *gin.Context) {
	lessonID := c.Param("lesson_id")
	lesson, ok := h.catalog.LessonByID(lessonID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrLessonNotFound.Error()})
		return
	}

	content, err := h.service.Generate(c.Request.Context(), lesson.Title)
	if err != nil {
		if errors.Is(err, app_errors.ErrGenerationFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": generationFailedMessage})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": generationFailedMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lesson":  lesson,
		"content": content,
	})
}
