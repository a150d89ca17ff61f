package task

import "taskflow/internal/model"

// Due filters accepted by List.
const (
	DueToday   = "today"
	DueWeek    = "week"
	DueOverdue = "overdue"
)

// --- UseCase Inputs ---

// CreateInput holds a new task. Empty priority defaults to Low.
// When Subtasks is empty, markdown checkboxes in Description become subtasks.
type CreateInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
	Completed   bool
	AssignedTo  []string
	Subtasks    []model.Subtask
}

type ListInput struct {
	Completed *bool
	Priority  string
	Due       string
}

// UpdateInput is a partial update. An empty Title or Priority keeps the current
// value. Nil Description, DueDate, Completed, AssignedTo and Subtasks keep theirs.
// A pointer to "" clears Description or DueDate, and a non-nil empty slice clears the list.
type UpdateInput struct {
	ID          string
	Title       string
	Description *string
	Priority    string
	DueDate     *string
	Completed   *bool
	AssignedTo  []string
	Subtasks    []model.Subtask
}

// --- UseCase Outputs ---

type TaskOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks []model.Task
}

type StatsOutput struct {
	Total          int
	Completed      int
	Pending        int
	HighPriority   int
	DueToday       int
	Overdue        int
	CompletionRate float64
}
