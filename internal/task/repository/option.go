package repository

import "taskflow/internal/model"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	OwnerID     string
	Title       string
	Description string
	Priority    model.Priority
	DueDate     string
	Completed   bool
	AssignedTo  []string
	Subtasks    []model.Subtask
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter parameters for listing Tasks.
// All non-empty fields are applied as AND conditions. Dates are YYYY-MM-DD;
// DueFrom and DueTo are inclusive, DueBefore is exclusive.
type ListTasksOptions struct {
	// VisibleTo restricts the list to tasks the user owns or is assigned to.
	VisibleTo string
	Completed *bool
	Priority  model.Priority
	DueFrom   string
	DueTo     string
	DueBefore string
}

// UpdateTaskOptions carries the full new state of the mutable fields.
type UpdateTaskOptions struct {
	ID          string
	Title       string
	Description string
	Priority    model.Priority
	DueDate     string
	Completed   bool
	AssignedTo  []string
	Subtasks    []model.Subtask
}
