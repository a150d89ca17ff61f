package usecase

import (
	"fmt"
	"strings"

	"taskflow/internal/assist"
	"taskflow/pkg/llmprovider"
)

const generationTemperature = 0.2

// taskSchema is the object the parse prompt asks for.
var taskSchema = &llmprovider.Schema{
	Type: llmprovider.TypeObject,
	Properties: map[string]*llmprovider.Schema{
		"title": {
			Type:        llmprovider.TypeString,
			Description: "A concise, actionable title for the task.",
		},
		"description": {
			Type:        llmprovider.TypeString,
			Description: "Detailed steps or context for the task.",
		},
		"priority": {
			Type:        llmprovider.TypeString,
			Enum:        []string{"Low", "Medium", "High"},
			Description: "The urgency level of the task.",
		},
		"dueDate": {
			Type:        llmprovider.TypeString,
			Format:      "date",
			Description: "The target completion date in 'YYYY-MM-DD' format (e.g., 2025-12-31).",
		},
	},
	Required: []string{"title"},
	Ordering: []string{"title", "description", "priority", "dueDate"},
}

// descriptionSchema is the object the description prompt asks for.
var descriptionSchema = &llmprovider.Schema{
	Type: llmprovider.TypeObject,
	Properties: map[string]*llmprovider.Schema{
		"description": {
			Type:        llmprovider.TypeString,
			Description: "The detailed task description.",
		},
	},
	Required: []string{"description"},
}

// buildParseTaskPrompt builds the extraction prompt for text, resolving
// relative dates against referenceDate (YYYY-MM-DD).
func buildParseTaskPrompt(text, referenceDate string) (string, *llmprovider.Schema, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil, assist.ErrEmptyNaturalLanguageInput
	}

	prompt := fmt.Sprintf(`The current date is %[1]s. Analyze the following user request and extract the task details. `+
		`Return the output as a JSON object that strictly adheres to the provided schema. `+
		`If a due date is implied (e.g., "by tomorrow" or "next week"), calculate the specific date in 'YYYY-MM-DD' format based on today's date (%[1]s) and include it. `+
		`If a value is not explicitly mentioned (like description), omit it. `+
		`User request: "%[2]s"`, referenceDate, text)

	return prompt, taskSchema, nil
}

// buildDescriptionPrompt builds the prompt that drafts a description from a title.
func buildDescriptionPrompt(title string) (string, *llmprovider.Schema, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", nil, assist.ErrEmptyTitle
	}

	prompt := fmt.Sprintf(`Generate a detailed and professional task description based ONLY on the following task title. `+
		`The description should include potential subtasks, context, and expected deliverables. `+
		`Return the output as a JSON object with a single key named 'description'. `+
		`Title: "%s"`, title)

	return prompt, descriptionSchema, nil
}
