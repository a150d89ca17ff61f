package http

import (
	"taskflow/internal/assist"
	"taskflow/pkg/log"
)

type handler struct {
	l  log.Logger
	uc assist.UseCase
}

// New creates a new HTTP handler for the AI assist endpoints.
func New(l log.Logger, uc assist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
