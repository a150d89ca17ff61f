package checklist

import (
	"regexp"
	"strings"

	"taskflow/internal/model"
)

const (
	// Regex pattern: captures indent, checkbox state, and text
	// Example: "  - [x] Task name" → groups: ["  ", "x", "Task name"]
	CheckboxPattern = `(?m)^([ \t]*)[-*] \[([ xX])\] (.+)$`
)

var (
	fencedCodeBlockPattern = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern      = regexp.MustCompile("`[^`]+`")
)

type Service interface {
	// ParseCheckboxes extracts all checkboxes from markdown content
	ParseCheckboxes(content string) []Checkbox

	// Subtasks converts the checkboxes of content into subtasks
	Subtasks(content string) []model.Subtask

	// GetStats calculates progress over a subtask list
	GetStats(subtasks []model.Subtask) Stats
}

type service struct {
	pattern *regexp.Regexp
}

func New() Service {
	return &service{
		pattern: regexp.MustCompile(CheckboxPattern),
	}
}

// sanitizeContent removes code blocks before checkbox parsing
// Prevents matching fake checkboxes in code examples
func sanitizeContent(content string) string {
	sanitized := fencedCodeBlockPattern.ReplaceAllString(content, "")
	return inlineCodePattern.ReplaceAllString(sanitized, "")
}

// ParseCheckboxes extracts all checkboxes from markdown
func (s *service) ParseCheckboxes(content string) []Checkbox {
	sanitized := sanitizeContent(content)

	matches := s.pattern.FindAllStringSubmatch(sanitized, -1)
	checkboxes := make([]Checkbox, 0, len(matches))

	for i, match := range matches {
		if len(match) != 4 {
			continue
		}

		checkboxes = append(checkboxes, Checkbox{
			Line:    i,
			Indent:  match[1],
			Checked: strings.ToLower(match[2]) == "x",
			Text:    strings.TrimSpace(match[3]),
		})
	}

	return checkboxes
}

// Subtasks returns one subtask per checkbox, in document order
func (s *service) Subtasks(content string) []model.Subtask {
	checkboxes := s.ParseCheckboxes(content)
	if len(checkboxes) == 0 {
		return nil
	}

	subtasks := make([]model.Subtask, 0, len(checkboxes))
	for _, cb := range checkboxes {
		if cb.Text == "" {
			continue
		}
		subtasks = append(subtasks, model.Subtask{Title: cb.Text, Completed: cb.Checked})
	}
	return subtasks
}

// GetStats calculates checklist statistics
func (s *service) GetStats(subtasks []model.Subtask) Stats {
	total := len(subtasks)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, st := range subtasks {
		if st.Completed {
			completed++
		}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}
