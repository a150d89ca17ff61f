package http

import (
	"taskflow/internal/checklist"
	"taskflow/internal/task"
	"taskflow/pkg/log"
)

type handler struct {
	l  log.Logger
	uc task.UseCase
	cl checklist.Service
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, cl checklist.Service) *handler {
	return &handler{
		l:  l,
		uc: uc,
		cl: cl,
	}
}
