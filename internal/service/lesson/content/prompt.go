package content

import "fmt"

func buildPrompt(lessonTitle string) string {
	return fmt.Sprintf(`Create a detailed, interactive lesson for an N8N course. The lesson is titled: %q.

Please adhere to the following structure and guidelines:
1.  **Introduction:** Start with a concise and engaging paragraph introducing the topic.
2.  **Scenario:** Describe a practical, real-world business problem this workflow will solve.
3.  **Steps:** Provide a list of 4-6 detailed, step-by-step instructions. These should be very specific, referencing N8N UI elements like "Click the '+' button", "Double-click the node", and "Enter '{{$json.someValue}}' in the expression editor."
4.  **Workflow Diagram:** Define the nodes and connections for a visual diagram. Position nodes logically from left to right. Assign 'x' coordinates between 0 (left) and 100 (right), and 'y' coordinates between 0 (top) and 100 (bottom).
5.  **Quiz:** Create a challenging quiz with 5-8 multiple-choice questions. Each question must have exactly 4 options. Provide an explanation for the correct answer.
6.  **Troubleshooting:** Add 2-3 common troubleshooting tips related to the lesson's content.
7.  **Content Focus:** The lesson must be hands-on and practical, focusing on building a functional workflow. Use real N8N node names.

Generate the output as a single JSON object that strictly follows the provided schema.`, lessonTitle)
}
