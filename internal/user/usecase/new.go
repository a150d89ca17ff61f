package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskflow/internal/user/repository"
	"taskflow/pkg/log"
	"taskflow/pkg/scope"
)

const minPasswordLength = 6

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	scope    scope.Manager
	hashCost int
	now      func() time.Time
}

// New creates a new user UseCase implementation.
func New(l log.Logger, repo repository.Repository, scopeManager scope.Manager) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		scope:    scopeManager,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
	}
}
