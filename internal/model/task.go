package model

import (
	"strconv"
	"strings"
	"time"
)

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority matches s case-insensitively against the known priorities.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	}
	return "", false
}

// Subtask is one step of a task's checklist.
type Subtask struct {
	Title     string
	Completed bool
}

// Task is a persisted unit of work.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Priority    Priority
	DueDate     string // YYYY-MM-DD, empty when unset
	Completed   bool
	AssignedTo  []string
	Subtasks    []Subtask
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanAccess reports whether the user owns or is assigned to the task.
func (t Task) CanAccess(userID string) bool {
	if t.OwnerID == userID {
		return true
	}
	for _, id := range t.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}

// ParseCompletion normalises the legacy completion representations
// (bool, 1/0, "Yes"/"No", "true"/"false") into a boolean.
// Anything unrecognised is treated as not completed.
func ParseCompletion(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case int:
		return val == 1
	case int32:
		return val == 1
	case int64:
		return val == 1
	case float64:
		return val == 1
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		if s == "yes" {
			return true
		}
		b, err := strconv.ParseBool(s)
		return err == nil && b
	}
	return false
}
