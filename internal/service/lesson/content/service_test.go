package content

import (
	"FlowAcademy/internal/app_errors"
	"FlowAcademy/internal/models"
	"FlowAcademy/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response    string
	err         error
	lastPrompt  string
	lastSchema  map[string]any
	invocations int
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, prompt string, schema map[string]any) (string, error) {
	f.invocations++
	f.lastPrompt = prompt
	f.lastSchema = schema
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func validContent() models.GeneratedLessonContent {
	questions := make([]models.QuizQuestion, 5)
	for i := range questions {
		questions[i] = models.QuizQuestion{
			Question:           "What does the Webhook node do?",
			Options:            []string{"a", "b", "c", "d"},
			CorrectAnswerIndex: i % 4,
			Explanation:        "It receives incoming HTTP requests.",
		}
	}
	return models.GeneratedLessonContent{
		Introduction: "An introduction.",
		Scenario:     "A new user signs up and we send a welcome email.",
		Steps: []models.Step{
			{Title: "Step 1: Create a Webhook Trigger", Instruction: "Click the '+' button."},
			{
				Title:       "Step 2: Add a Set Node",
				Instruction: "Double-click the node.",
				CodeExample: &models.CodeExample{Language: "json", Code: `{"name": "value"}`, Description: "A JSON body."},
			},
		},
		Workflow: models.Workflow{
			Nodes: []models.NodeData{
				{ID: "node-1", Label: "Webhook", Type: "trigger", X: 10, Y: 50},
				{ID: "node-2", Label: "Set", Type: "action", X: 60, Y: 50},
			},
			Edges: []models.EdgeData{
				{ID: "edge-1", Source: "node-1", Target: "node-2"},
			},
		},
		Quiz: questions,
		Troubleshooting: []models.TroubleshootingTip{
			{Title: "Data Not Appearing", Tip: "Check the webhook URL."},
			{Title: "Node Fails", Tip: "Inspect the execution log."},
		},
	}
}

func marshal(t *testing.T, c models.GeneratedLessonContent) string {
	t.Helper()
	data, err := json.Marshal(c)
	require.NoError(t, err)
	return string(data)
}

func newService(g *fakeGenerator) *LessonContentService {
	return NewLessonContentService(logger.New("local"), g)
}

func TestGenerate_Success(t *testing.T) {
	gen := &fakeGenerator{response: marshal(t, validContent())}
	s := newService(gen)

	got, err := s.Generate(context.Background(), "Creating Webhook Triggers")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "An introduction.", got.Introduction)
	assert.Len(t, got.Quiz, 5)
	assert.Len(t, got.Quiz[0].Options, 4)
	assert.Len(t, got.Workflow.Nodes, 2)
	require.NotNil(t, got.Steps[1].CodeExample)
	assert.Equal(t, "json", got.Steps[1].CodeExample.Language)

	// The prompt carries the lesson title and the schema contract rides along.
	assert.Contains(t, gen.lastPrompt, "Creating Webhook Triggers")
	assert.NotNil(t, gen.lastSchema["properties"])
}

func TestGenerate_MarkdownFencedPayload(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" + marshal(t, validContent()) + "\n```"}
	s := newService(gen)

	got, err := s.Generate(context.Background(), "Using the Set Node")

	require.NoError(t, err)
	assert.Len(t, got.Quiz, 5)
}

func TestGenerate_ProviderFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	s := newService(gen)

	got, err := s.Generate(context.Background(), "Introduction to N8N")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, app_errors.ErrGenerationFailed)
}

func TestGenerate_UnparseablePayload(t *testing.T) {
	gen := &fakeGenerator{response: "Sorry, I can't help with that."}
	s := newService(gen)

	got, err := s.Generate(context.Background(), "Introduction to N8N")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, app_errors.ErrGenerationFailed)
}

func TestGenerate_MissingRequiredField(t *testing.T) {
	payload := marshal(t, validContent())
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	delete(m, "introduction")
	data, err := json.Marshal(m)
	require.NoError(t, err)

	s := newService(&fakeGenerator{response: string(data)})

	got, genErr := s.Generate(context.Background(), "Introduction to N8N")

	assert.Nil(t, got)
	assert.ErrorIs(t, genErr, app_errors.ErrGenerationFailed)
}

func TestGenerate_WrongOptionCount(t *testing.T) {
	c := validContent()
	c.Quiz[2].Options = []string{"a", "b", "c"}
	s := newService(&fakeGenerator{response: marshal(t, c)})

	got, err := s.Generate(context.Background(), "Introduction to N8N")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, app_errors.ErrGenerationFailed)
}

func TestGenerate_QuizSizeOutOfBounds(t *testing.T) {
	c := validContent()
	c.Quiz = c.Quiz[:4]
	s := newService(&fakeGenerator{response: marshal(t, c)})

	got, err := s.Generate(context.Background(), "Introduction to N8N")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, app_errors.ErrGenerationFailed)
}

func TestGenerate_AnswerIndexOutOfRange(t *testing.T) {
	c := validContent()
	c.Quiz[0].CorrectAnswerIndex = 7
	s := newService(&fakeGenerator{response: marshal(t, c)})

	got, err := s.Generate(context.Background(), "Introduction to N8N")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, app_errors.ErrGenerationFailed)
}

func TestGenerate_EachCallIsIndependent(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("network down")}
	s := newService(gen)
	ctx := context.Background()

	_, err := s.Generate(ctx, "Introduction to N8N")
	require.ErrorIs(t, err, app_errors.ErrGenerationFailed)

	// A retry after recovery is a fresh attempt, not a cached failure.
	gen.err = nil
	gen.response = marshal(t, validContent())

	got, err := s.Generate(ctx, "Introduction to N8N")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, 2, gen.invocations)
}
