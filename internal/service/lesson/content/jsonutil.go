package content

import (
	"regexp"
	"strings"
)

var (
	// jsonBlockPattern matches a JSON object inside a markdown code block.
	jsonBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	// jsonObjectPattern matches any JSON object (greedy fallback).
	jsonObjectPattern = regexp.MustCompile(`(?s)\{[\s\S]*\}`)
)

// extractJSON pulls the JSON object out of a provider response. Structured
// output mode should return bare JSON, but models occasionally wrap it in
// markdown fences or surrounding prose.
func extractJSON(payload string) string {
	payload = strings.TrimSpace(payload)
	if matches := jsonBlockPattern.FindStringSubmatch(payload); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	if match := jsonObjectPattern.FindString(payload); match != "" {
		return match
	}
	return ""
}
