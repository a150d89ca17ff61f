package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrForbidden       = errors.New("not allowed to access this task")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPriority = errors.New("priority must be Low, Medium or High")
	ErrInvalidDueDate  = errors.New("due date must be YYYY-MM-DD")
	ErrPastDueDate     = errors.New("due date cannot be in the past")
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrSubtaskNotFound = errors.New("subtask not found")
	ErrInvalidSubtask  = errors.New("subtask title is required")
	ErrUnknownAssignee = errors.New("unknown assignee")
)
