package models

// AnswerSet holds one entry per quiz question, positionally matched.
// A nil entry means the question has not been answered yet.
type AnswerSet []*int

func NewAnswerSet(questionCount int) AnswerSet {
	return make(AnswerSet, questionCount)
}

// Complete reports whether every question has an answer.
// Vacuously true for an empty set.
func (a AnswerSet) Complete() bool {
	for _, v := range a {
		if v == nil {
			return false
		}
	}
	return true
}

// QuizState is the per-lesson answer record plus the derived submission flag.
type QuizState struct {
	LessonID  string    `json:"lesson_id"`
	Answers   AnswerSet `json:"answers"`
	Submitted bool      `json:"submitted"`
}

// ScoreReport is derived from an answer-set and the correct indices,
// recomputed on demand and never stored.
type ScoreReport struct {
	Score      int  `json:"score"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	Passed     bool `json:"passed"`
}
