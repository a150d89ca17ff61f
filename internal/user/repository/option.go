package repository

import "taskflow/internal/model"

// CreateUserOptions holds parameters for inserting a new User.
// Email must already be normalised.
type CreateUserOptions struct {
	Name         string
	Email        string
	PasswordHash string
	Role         model.Role
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// Exactly one field is expected to be set.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// ListUsersOptions filters the user list. Empty IDs lists everyone.
type ListUsersOptions struct {
	IDs []string
}

// UpdateUserOptions carries the full new state of the mutable fields.
type UpdateUserOptions struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}
