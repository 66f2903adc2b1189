package content

import (
	"FlowAcademy/internal/app_errors"
	"FlowAcademy/internal/models"
	"FlowAcademy/pkg/logger"
	"context"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

type generator interface {
	GenerateJSON(ctx context.Context, prompt string, schema map[string]any) (string, error)
}

// LessonContentService turns a lesson title into structured lesson content.
// Every call is independent: no caching, no retry, and repeated calls for the
// same title may yield different content.
type LessonContentService struct {
	log       logger.Log
	generator generator
	contract  gojsonschema.JSONLoader
}

func NewLessonContentService(log logger.Log, g generator) *LessonContentService {
	return &LessonContentService{
		log:       log,
		generator: g,
		contract:  gojsonschema.NewStringLoader(contentContract),
	}
}

// Generate requests lesson content for the given title and validates the
// provider response before handing it over. Any failure, from transport
// to malformed payload, surfaces as app_errors.ErrGenerationFailed; the
// details stay in the logs.
func (s *LessonContentService) Generate(ctx context.Context, lessonTitle string) (*models.GeneratedLessonContent, error) {
	raw, err := s.generator.GenerateJSON(ctx, buildPrompt(lessonTitle), responseSchema())
	if err != nil {
		s.log.ErrorErr("lesson content generation failed", err, "lesson_title", lessonTitle)
		return nil, fmt.Errorf("%w: provider call failed", app_errors.ErrGenerationFailed)
	}

	payload := extractJSON(raw)
	if payload == "" {
		s.log.Error("provider returned no JSON payload", "lesson_title", lessonTitle)
		return nil, fmt.Errorf("%w: empty response", app_errors.ErrGenerationFailed)
	}

	result, err := gojsonschema.Validate(s.contract, gojsonschema.NewStringLoader(payload))
	if err != nil {
		s.log.ErrorErr("lesson content is not valid JSON", err, "lesson_title", lessonTitle)
		return nil, fmt.Errorf("%w: malformed response", app_errors.ErrGenerationFailed)
	}
	if !result.Valid() {
		s.log.Error("lesson content violates response contract",
			"lesson_title", lessonTitle,
			"violations", contractViolations(result),
		)
		return nil, fmt.Errorf("%w: response contract violation", app_errors.ErrGenerationFailed)
	}

	var generated models.GeneratedLessonContent
	if err := json.Unmarshal([]byte(payload), &generated); err != nil {
		s.log.ErrorErr("failed to decode lesson content", err, "lesson_title", lessonTitle)
		return nil, fmt.Errorf("%w: malformed response", app_errors.ErrGenerationFailed)
	}

	if err := validateContent(&generated); err != nil {
		s.log.ErrorErr("generated lesson content rejected", err, "lesson_title", lessonTitle)
		return nil, fmt.Errorf("%w: %s", app_errors.ErrGenerationFailed, err)
	}

	return &generated, nil
}

// validateContent runs the semantic checks the JSON Schema cannot express
// per-document: quiz size bounds and answer index vs option count.
func validateContent(c *models.GeneratedLessonContent) error {
	if len(c.Quiz) < 5 || len(c.Quiz) > 8 {
		return fmt.Errorf("quiz has %d questions, want 5-8", len(c.Quiz))
	}
	for i, q := range c.Quiz {
		if len(q.Options) != 4 {
			return fmt.Errorf("question %d has %d options, want exactly 4", i, len(q.Options))
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
			return fmt.Errorf("question %d correct answer index %d out of range", i, q.CorrectAnswerIndex)
		}
	}
	return nil
}

func contractViolations(result *gojsonschema.Result) []string {
	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return violations
}
