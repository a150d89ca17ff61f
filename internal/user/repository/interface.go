package repository

import (
	"context"

	"taskflow/internal/model"
)

// Repository is the composed interface for the user domain data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
// GetOneUser returns a zero User (empty ID) and no error when nothing matches.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	ListUsers(ctx context.Context, opt ListUsersOptions) ([]model.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (model.User, error)
}
