package service

import (
	"FlowAcademy/internal/service/lesson/content"
	"FlowAcademy/internal/service/lesson/quiz"
)

type Collection struct {
	ContentService *content.LessonContentService
	QuizService    *quiz.QuizService
}
