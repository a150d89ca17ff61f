package http

import (
	"errors"
	"net/http"

	"taskflow/internal/assist"
)

// Client-facing messages. The endpoints answer with these exact strings.
const (
	msgInputRequired      = "Natural language input is required."
	msgInvalidCurrentDate = "currentDate must be in YYYY-MM-DD format."
	msgParseFailed        = "Failed to parse task using AI."
	msgTitleRequired      = "Task title is required for description generation."
	msgDescriptionFailed  = "AI service failed to generate description."
)

// mapParseError returns the status and message for a ParseTask failure.
// Malformed answers share the generation failure message.
func (h *handler) mapParseError(err error) (int, string) {
	switch {
	case errors.Is(err, assist.ErrInvalidCurrentDate):
		return http.StatusBadRequest, msgInvalidCurrentDate
	case errors.Is(err, assist.ErrInvalidInput):
		return http.StatusBadRequest, msgInputRequired
	default:
		return http.StatusInternalServerError, msgParseFailed
	}
}
