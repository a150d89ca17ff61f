package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"taskflow/internal/assist"
	"taskflow/internal/model"
	"taskflow/pkg/llmprovider"
)

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// generate sends prompt once and returns the raw answer.
func (uc *implUseCase) generate(ctx context.Context, prompt string, schema *llmprovider.Schema) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:       []llmprovider.Message{llmprovider.UserMessage(prompt)},
		Temperature:    generationTemperature,
		ResponseSchema: schema,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", assist.ErrGenerationFailed, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", assist.ErrGenerationFailed
	}
	return text, nil
}

// decodeJSON unmarshals an LLM answer into v after stripping code fences.
func decodeJSON(text string, v any) error {
	cleaned := sanitizeJSONResponse(text)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: %v", assist.ErrMalformedResponse, err)
	}
	return nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFencePattern.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return strings.TrimSpace(text)
	}
	return text[start : end+1]
}

// parsedTask mirrors the task schema. Priority and dueDate are kept raw so
// that unexpected values can be reported instead of failing the decode.
type parsedTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

// validateDraft normalises priority and checks dueDate against referenceDate.
// Invalid fields are cleared and reported as warnings.
func validateDraft(p parsedTask, referenceDate string) (model.TaskDraft, []string) {
	draft := model.TaskDraft{
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
	}
	var warnings []string

	if raw := strings.TrimSpace(p.Priority); raw != "" {
		if priority, ok := model.ParsePriority(raw); ok {
			draft.Priority = string(priority)
		} else {
			warnings = append(warnings, fmt.Sprintf("AI returned an unsupported priority: %s.", raw))
		}
	}

	if raw := strings.TrimSpace(p.DueDate); raw != "" {
		if w := dueDateWarning(raw, referenceDate); w != "" {
			warnings = append(warnings, w)
		} else {
			draft.DueDate = raw
		}
	}

	return draft, warnings
}

// dueDateWarning returns the warning for an unusable due date, or "" when it holds.
func dueDateWarning(dueDate, referenceDate string) string {
	switch model.ValidateDueDate(dueDate, referenceDate) {
	case nil:
		return ""
	case model.ErrDueDatePast:
		return fmt.Sprintf("AI suggested a past date: %s. Please choose a future date.", dueDate)
	default:
		return fmt.Sprintf("AI provided an invalid date format: %s. Please enter manually.", dueDate)
	}
}
