package http

import (
	"errors"
	"net/http"

	"taskflow/internal/task"
	pkgErrors "taskflow/pkg/errors"
)

var (
	errWrongBody         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errWrongQuery        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong query")
	errWrongSubtaskIndex = pkgErrors.NewHTTPError(http.StatusBadRequest, "Subtask index must be a number")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
	case errors.Is(err, task.ErrSubtaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Subtask not found")
	case errors.Is(err, task.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "Not authorized to access this task")
	case errors.Is(err, task.ErrTitleRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Title is required")
	case errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Priority must be Low, Medium or High")
	case errors.Is(err, task.ErrInvalidDueDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Due date must be in YYYY-MM-DD format")
	case errors.Is(err, task.ErrPastDueDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Due date cannot be in the past")
	case errors.Is(err, task.ErrInvalidFilter):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid filter")
	case errors.Is(err, task.ErrInvalidSubtask):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Subtask title is required")
	case errors.Is(err, task.ErrUnknownAssignee):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Assigned user does not exist")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
