// Package quiz tracks per-lesson answer state. Answers accumulate one at a
// time and never revert; once every question is answered the quiz counts as
// submitted and further answers are ignored. Scoring is derived on demand.
package quiz

import (
	"FlowAcademy/internal/app_errors"
	"FlowAcademy/internal/models"
	"FlowAcademy/pkg/logger"
	"context"
	"math"
)

const passThresholdPercent = 80

type answerStore interface {
	// LoadAnswers returns the persisted answer-set for a lesson, or nil
	// when no record exists.
	LoadAnswers(ctx context.Context, lessonID string) (models.AnswerSet, error)
	SaveAnswers(ctx context.Context, lessonID string, answers models.AnswerSet) error
}

type QuizService struct {
	log   logger.Log
	store answerStore
}

func NewQuizService(log logger.Log, store answerStore) *QuizService {
	return &QuizService{
		log:   log,
		store: store,
	}
}

// State loads the answer-set for (lessonID, questionCount). A persisted
// record whose length does not match questionCount is stale (the quiz was
// regenerated with a different size) and is discarded, not coerced. Store
// failures degrade to the all-unanswered default.
func (s *QuizService) State(ctx context.Context, lessonID string, questionCount int) models.QuizState {
	answers := models.NewAnswerSet(questionCount)

	saved, err := s.store.LoadAnswers(ctx, lessonID)
	if err != nil {
		s.log.Warn("failed to load quiz answers, starting fresh", "lesson_id", lessonID, logger.Err(err))
	} else if len(saved) == questionCount {
		answers = saved
	}

	return models.QuizState{
		LessonID:  lessonID,
		Answers:   answers,
		Submitted: answers.Complete(),
	}
}

// Answer records the selected option for one question and persists the full
// answer-set. Answering an already answered question, or any question after
// submission, is a no-op returning the unchanged state.
func (s *QuizService) Answer(ctx context.Context, lessonID string, questionCount, questionIndex, optionIndex int) (models.QuizState, error) {
	if questionIndex < 0 || questionIndex >= questionCount {
		return models.QuizState{}, app_errors.ErrQuestionOutOfRange
	}
	if optionIndex < 0 || optionIndex >= 4 {
		return models.QuizState{}, app_errors.ErrOptionOutOfRange
	}

	state := s.State(ctx, lessonID, questionCount)
	if state.Submitted || state.Answers[questionIndex] != nil {
		return state, nil
	}

	selected := optionIndex
	state.Answers[questionIndex] = &selected
	state.Submitted = state.Answers.Complete()

	if err := s.store.SaveAnswers(ctx, lessonID, state.Answers); err != nil {
		// The in-memory transition still holds; persistence is best effort.
		s.log.Warn("failed to save quiz answers", "lesson_id", lessonID, logger.Err(err))
	}

	return state, nil
}

// Score grades an answer-set against the correct indices. Unanswered
// questions count as wrong. An empty quiz scores 0%, not passed.
func Score(answers models.AnswerSet, correctIndices []int) models.ScoreReport {
	total := len(correctIndices)

	score := 0
	for i, correct := range correctIndices {
		if i < len(answers) && answers[i] != nil && *answers[i] == correct {
			score++
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(score) / float64(total) * 100))
	}

	return models.ScoreReport{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Passed:     percentage >= passThresholdPercent,
	}
}
