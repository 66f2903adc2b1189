package app_errors

import "errors"

var ErrGenerationFailed = errors.New("failed to generate lesson content")
var ErrLessonNotFound = errors.New("lesson not found")
var ErrQuestionOutOfRange = errors.New("question index out of range")
var ErrOptionOutOfRange = errors.New("option index out of range")
