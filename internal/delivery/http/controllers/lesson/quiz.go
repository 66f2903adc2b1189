package lesson

import (
	"FlowAcademy/internal/app_errors"
	"FlowAcademy/internal/models"
	"FlowAcademy/internal/service/lesson/quiz"
	"FlowAcademy/pkg/logger"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuizService interface {
	State(ctx context.Context, lessonID string, questionCount int) models.QuizState
	Answer(ctx context.Context, lessonID string, questionCount, questionIndex, optionIndex int) (models.QuizState, error)
}

type QuizHandler struct {
	log     logger.Log
	service QuizService
}

func NewQuizHandler(log logger.Log, service QuizService) *QuizHandler {
	return &QuizHandler{log: log, service: service}
}

// GetState returns the answer state for a lesson's quiz. The question count
// comes from the caller because generated quizzes are session-owned and the
// server keeps no copy of them.
func (h *QuizHandler) GetState(c *gin.Context) {
	lessonID := c.Param("lesson_id")

	count, err := strconv.Atoi(c.Query("count"))
	if err != nil || count < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
		return
	}

	state := h.service.State(c.Request.Context(), lessonID, count)
	c.JSON(http.StatusOK, state)
}

type answerRequest struct {
	QuestionCount int `json:"question_count" binding:"required"`
	QuestionIndex int `json:"question_index"`
	OptionIndex   int `json:"option_index"`
}

func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	lessonID := c.Param("lesson_id")

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.service.Answer(c.Request.Context(), lessonID, req.QuestionCount, req.QuestionIndex, req.OptionIndex)
	if err != nil {
		if errors.Is(err, app_errors.ErrQuestionOutOfRange) || errors.Is(err, app_errors.ErrOptionOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

type scoreRequest struct {
	CorrectAnswerIndexes []int `json:"correct_answer_indexes" binding:"required"`
}

// GetScore grades the stored answers against the correct indices supplied
// by the caller. The result is derived on every call, never stored.
func (h *QuizHandler) GetScore(c *gin.Context) {
	lessonID := c.Param("lesson_id")

	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := h.service.State(c.Request.Context(), lessonID, len(req.CorrectAnswerIndexes))
	report := quiz.Score(state.Answers, req.CorrectAnswerIndexes)

	c.JSON(http.StatusOK, gin.H{
		"submitted": state.Submitted,
		"score":     report.Score,
		"total":     report.Total,
		"percent":   report.Percentage,
		"passed":    report.Passed,
	})
}
