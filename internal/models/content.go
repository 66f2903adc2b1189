package models

const (
	NodeTypeTrigger = "trigger"
	NodeTypeAction  = "action"
	NodeTypeLogic   = "logic"
)

// GeneratedLessonContent is the full structured payload produced by the
// content generator for one lesson. It is built fresh on every request and
// never cached.
type GeneratedLessonContent struct {
	Introduction    string               `json:"introduction"`
	Scenario        string               `json:"scenario"`
	Steps           []Step               `json:"steps"`
	Workflow        Workflow             `json:"workflow"`
	Quiz            []QuizQuestion       `json:"quiz"`
	Troubleshooting []TroubleshootingTip `json:"troubleshooting"`
}

type Step struct {
	Title       string       `json:"title"`
	Instruction string       `json:"instruction"`
	CodeExample *CodeExample `json:"codeExample,omitempty"`
}

type CodeExample struct {
	Language    string `json:"language"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Workflow is a directed graph of labeled nodes positioned in normalized
// 2-D space. Node coordinates are percentages of the canvas, 0-100.
type Workflow struct {
	Nodes []NodeData `json:"nodes"`
	Edges []EdgeData `json:"edges"`
}

type NodeData struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

type EdgeData struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

type TroubleshootingTip struct {
	Title string `json:"title"`
	Tip   string `json:"tip"`
}
