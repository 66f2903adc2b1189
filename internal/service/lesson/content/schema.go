package content

// responseSchema is the shape contract sent to the provider with every
// generation request, in the Gemini structured-output format. Field
// descriptions steer the model, so they are part of the contract too.
func responseSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"introduction": map[string]any{
				"type":        "STRING",
				"description": "A brief, engaging introduction to the lesson's topic.",
			},
			"scenario": map[string]any{
				"type":        "STRING",
				"description": "A real-world business scenario that the workflow will solve. For example: 'A new user signs up, and we want to automatically send them a welcome email and add them to our CRM.'",
			},
			"steps": map[string]any{
				"type":        "ARRAY",
				"description": "A series of 4-6 detailed, step-by-step instructions to build the workflow.",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "STRING",
							"description": "A clear title for the step, e.g., 'Step 1: Create a Webhook Trigger'.",
						},
						"instruction": map[string]any{
							"type":        "STRING",
							"description": "Detailed instructions for this step, including what node to add and how to configure it. Refer to N8N UI elements exactly, like 'Click the '+' button'.",
						},
						"codeExample": map[string]any{
							"type":        "OBJECT",
							"description": "An optional code example, like a JSON body or a Javascript expression.",
							"properties": map[string]any{
								"language":    map[string]any{"type": "STRING", "description": "e.g., 'json' or 'javascript'"},
								"code":        map[string]any{"type": "STRING", "description": "The code snippet itself."},
								"description": map[string]any{"type": "STRING", "description": "A brief explanation of the code snippet."},
							},
						},
					},
				},
			},
			"workflow": map[string]any{
				"type":        "OBJECT",
				"description": "A visual representation of the workflow. Nodes should be positioned in a logical flow from left to right.",
				"properties": map[string]any{
					"nodes": map[string]any{
						"type": "ARRAY",
						"items": map[string]any{
							"type": "OBJECT",
							"properties": map[string]any{
								"id":    map[string]any{"type": "STRING", "description": "A unique ID for the node, e.g., 'node-1'."},
								"label": map[string]any{"type": "STRING", "description": "The name of the node, e.g., 'Webhook'."},
								"type":  map[string]any{"type": "STRING", "description": "The type of node, e.g., 'trigger', 'action', 'logic'."},
								"x":     map[string]any{"type": "INTEGER", "description": "X coordinate for positioning, from 0 to 100."},
								"y":     map[string]any{"type": "INTEGER", "description": "Y coordinate for positioning, from 0 to 100."},
							},
						},
					},
					"edges": map[string]any{
						"type": "ARRAY",
						"items": map[string]any{
							"type": "OBJECT",
							"properties": map[string]any{
								"id":     map[string]any{"type": "STRING", "description": "A unique ID for the edge, e.g., 'edge-1'."},
								"source": map[string]any{"type": "STRING", "description": "The ID of the source node."},
								"target": map[string]any{"type": "STRING", "description": "The ID of the target node."},
							},
						},
					},
				},
			},
			"quiz": map[string]any{
				"type":        "ARRAY",
				"description": "A list of 5-8 multiple-choice quiz questions to test knowledge.",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"question": map[string]any{"type": "STRING", "description": "The quiz question."},
						"options": map[string]any{
							"type":        "ARRAY",
							"description": "An array of 4 possible answers.",
							"items":       map[string]any{"type": "STRING"},
						},
						"correctAnswerIndex": map[string]any{"type": "INTEGER", "description": "The 0-based index of the correct answer in the options array."},
						"explanation":        map[string]any{"type": "STRING", "description": "A brief explanation for why the correct answer is right."},
					},
				},
			},
			"troubleshooting": map[string]any{
				"type":        "ARRAY",
				"description": "A list of 2-3 common problems and solutions related to the lesson.",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"title": map[string]any{"type": "STRING", "description": "The problem title, e.g., 'Data Not Appearing'."},
						"tip":   map[string]any{"type": "STRING", "description": "The solution or troubleshooting tip."},
					},
				},
			},
		},
	}
}

// contentContract is the same shape as responseSchema expressed as JSON
// Schema, used to check the decoded payload before it is trusted. It is
// stricter than what the provider is asked for: required fields, option
// counts, and coordinate bounds are enforced here.
const contentContract = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["introduction", "scenario", "steps", "workflow", "quiz", "troubleshooting"],
	"properties": {
		"introduction": {"type": "string"},
		"scenario": {"type": "string"},
		"steps": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title", "instruction"],
				"properties": {
					"title": {"type": "string"},
					"instruction": {"type": "string"},
					"codeExample": {
						"type": "object",
						"required": ["language", "code"],
						"properties": {
							"language": {"type": "string"},
							"code": {"type": "string"},
							"description": {"type": "string"}
						}
					}
				}
			}
		},
		"workflow": {
			"type": "object",
			"required": ["nodes", "edges"],
			"properties": {
				"nodes": {
					"type": "array",
					"items": {
						"type": "object",
						"required": ["id", "label", "type", "x", "y"],
						"properties": {
							"id": {"type": "string"},
							"label": {"type": "string"},
							"type": {"type": "string"},
							"x": {"type": "integer", "minimum": 0, "maximum": 100},
							"y": {"type": "integer", "minimum": 0, "maximum": 100}
						}
					}
				},
				"edges": {
					"type": "array",
					"items": {
						"type": "object",
						"required": ["id", "source", "target"],
						"properties": {
							"id": {"type": "string"},
							"source": {"type": "string"},
							"target": {"type": "string"}
						}
					}
				}
			}
		},
		"quiz": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["question", "options", "correctAnswerIndex", "explanation"],
				"properties": {
					"question": {"type": "string"},
					"options": {
						"type": "array",
						"items": {"type": "string"},
						"minItems": 4,
						"maxItems": 4
					},
					"correctAnswerIndex": {"type": "integer", "minimum": 0, "maximum": 3},
					"explanation": {"type": "string"}
				}
			}
		},
		"troubleshooting": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title", "tip"],
				"properties": {
					"title": {"type": "string"},
					"tip": {"type": "string"}
				}
			}
		}
	}
}`
