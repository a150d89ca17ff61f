package usecase

import (
	"time"

	"taskflow/internal/checklist"
	"taskflow/internal/task/repository"
	"taskflow/internal/user"
	"taskflow/pkg/datemath"
	"taskflow/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	users     user.UseCase
	checklist checklist.Service
	dates     *datemath.Parser
	now       func() time.Time
}

// New creates a new task UseCase implementation.
// dates resolves "today" and "this week" in the configured timezone.
func New(l log.Logger, repo repository.Repository, users user.UseCase, cl checklist.Service, dates *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		users:     users,
		checklist: cl,
		dates:     dates,
		now:       time.Now,
	}
}
