package quiz

import (
	"FlowAcademy/internal/app_errors"
	"FlowAcademy/internal/models"
	"FlowAcademy/pkg/logger"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	answers map[string]models.AnswerSet
	loadErr error
	saveErr error
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{answers: make(map[string]models.AnswerSet)}
}

func (f *fakeStore) LoadAnswers(_ context.Context, lessonID string) (models.AnswerSet, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.answers[lessonID], nil
}

func (f *fakeStore) SaveAnswers(_ context.Context, lessonID string, answers models.AnswerSet) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	saved := make(models.AnswerSet, len(answers))
	copy(saved, answers)
	f.answers[lessonID] = saved
	return nil
}

func newService(store *fakeStore) *QuizService {
	return NewQuizService(logger.New("local"), store)
}

func intPtr(v int) *int { return &v }

func TestState_FreshLesson(t *testing.T) {
	s := newService(newFakeStore())

	state := s.State(context.Background(), "l1-1", 5)

	assert.Equal(t, "l1-1", state.LessonID)
	assert.Len(t, state.Answers, 5)
	assert.False(t, state.Submitted)
	for _, a := range state.Answers {
		assert.Nil(t, a)
	}
}

func TestState_RestoresPersistedAnswers(t *testing.T) {
	store := newFakeStore()
	store.answers["l1-1"] = models.AnswerSet{intPtr(0), intPtr(2), nil}
	s := newService(store)

	state := s.State(context.Background(), "l1-1", 3)

	require.Len(t, state.Answers, 3)
	assert.Equal(t, 0, *state.Answers[0])
	assert.Equal(t, 2, *state.Answers[1])
	assert.Nil(t, state.Answers[2])
	assert.False(t, state.Submitted)
}

func TestState_StaleLengthDiscarded(t *testing.T) {
	store := newFakeStore()
	store.answers["l1-1"] = models.AnswerSet{intPtr(0), intPtr(1), intPtr(2), intPtr(3), intPtr(0), intPtr(1)}
	s := newService(store)

	// Same lesson regenerated with a different quiz size: the old record
	// must be discarded whole, not truncated.
	state := s.State(context.Background(), "l1-1", 4)

	require.Len(t, state.Answers, 4)
	for _, a := range state.Answers {
		assert.Nil(t, a)
	}
	assert.False(t, state.Submitted)
}

func TestState_LoadFailureFallsBack(t *testing.T) {
	store := newFakeStore()
	store.loadErr = errors.New("store unavailable")
	s := newService(store)

	state := s.State(context.Background(), "l1-1", 3)

	require.Len(t, state.Answers, 3)
	assert.False(t, state.Submitted)
}

func TestAnswer_PersistsEveryMutation(t *testing.T) {
	store := newFakeStore()
	s := newService(store)

	_, err := s.Answer(context.Background(), "l2-1", 3, 0, 2)
	require.NoError(t, err)
	_, err = s.Answer(context.Background(), "l2-1", 3, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, store.saves)
	saved := store.answers["l2-1"]
	require.Len(t, saved, 3)
	assert.Equal(t, 2, *saved[0])
	assert.Nil(t, saved[1])
	assert.Equal(t, 1, *saved[2])
}

func TestAnswer_AnsweredQuestionIsImmutable(t *testing.T) {
	s := newService(newFakeStore())

	_, err := s.Answer(context.Background(), "l2-1", 2, 0, 1)
	require.NoError(t, err)

	state, err := s.Answer(context.Background(), "l2-1", 2, 0, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, *state.Answers[0])
}

func TestAnswer_SubmittedIsTerminal(t *testing.T) {
	s := newService(newFakeStore())
	ctx := context.Background()

	state, err := s.Answer(ctx, "l2-1", 2, 0, 0)
	require.NoError(t, err)
	assert.False(t, state.Submitted)

	state, err = s.Answer(ctx, "l2-1", 2, 1, 0)
	require.NoError(t, err)
	assert.True(t, state.Submitted)

	// Any further answer is a no-op.
	state, err = s.Answer(ctx, "l2-1", 2, 1, 3)
	require.NoError(t, err)
	assert.True(t, state.Submitted)
	assert.Equal(t, 0, *state.Answers[1])
}

func TestAnswer_OutOfRange(t *testing.T) {
	s := newService(newFakeStore())
	ctx := context.Background()

	_, err := s.Answer(ctx, "l2-1", 3, 5, 0)
	assert.ErrorIs(t, err, app_errors.ErrQuestionOutOfRange)

	_, err = s.Answer(ctx, "l2-1", 3, -1, 0)
	assert.ErrorIs(t, err, app_errors.ErrQuestionOutOfRange)

	_, err = s.Answer(ctx, "l2-1", 3, 0, 4)
	assert.ErrorIs(t, err, app_errors.ErrOptionOutOfRange)
}

func TestAnswer_SaveFailureKeepsInMemoryState(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("quota exceeded")
	s := newService(store)

	state, err := s.Answer(context.Background(), "l2-1", 2, 0, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, *state.Answers[0])
}

func TestAnswer_SwitchingLessonsKeepsRecordsApart(t *testing.T) {
	store := newFakeStore()
	s := newService(store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Answer(ctx, "lesson-a", 6, i, 1)
		require.NoError(t, err)
	}

	// Lesson B has no prior record.
	stateB := s.State(ctx, "lesson-b", 5)
	for _, a := range stateB.Answers {
		assert.Nil(t, a)
	}

	// Back to A: the 3 answers are restored exactly.
	stateA := s.State(ctx, "lesson-a", 6)
	for i := 0; i < 3; i++ {
		require.NotNil(t, stateA.Answers[i])
		assert.Equal(t, 1, *stateA.Answers[i])
	}
	for i := 3; i < 6; i++ {
		assert.Nil(t, stateA.Answers[i])
	}
}

func TestScore_Scenario(t *testing.T) {
	answers := models.AnswerSet{intPtr(0), intPtr(1), intPtr(2), intPtr(3), intPtr(1)}
	correct := []int{0, 1, 2, 3, 0}

	report := Score(answers, correct)

	assert.Equal(t, 4, report.Score)
	assert.Equal(t, 80, report.Percentage)
	assert.True(t, report.Passed)
	assert.True(t, answers.Complete())
}

func TestScore_EmptyQuiz(t *testing.T) {
	report := Score(models.AnswerSet{}, nil)

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, 0, report.Percentage)
	assert.False(t, report.Passed)
}

func TestScore_UnansweredCountsAsWrong(t *testing.T) {
	answers := models.AnswerSet{intPtr(0), nil, nil}
	correct := []int{0, 1, 2}

	report := Score(answers, correct)

	assert.Equal(t, 1, report.Score)
	assert.Equal(t, 33, report.Percentage)
	assert.False(t, report.Passed)
}

func TestScore_Idempotent(t *testing.T) {
	answers := models.AnswerSet{intPtr(2), intPtr(0), intPtr(3)}
	correct := []int{2, 1, 3}

	first := Score(answers, correct)
	second := Score(answers, correct)

	assert.Equal(t, first, second)
}
