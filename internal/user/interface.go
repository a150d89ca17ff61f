package user

import (
	"context"

	"taskflow/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Accounts
	Register(ctx context.Context, input RegisterInput) (UserOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	// Caller profile
	Detail(ctx context.Context, sc model.Scope) (UserOutput, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (UserOutput, error)
	UpdatePassword(ctx context.Context, sc model.Scope, input UpdatePasswordInput) error

	// Team
	ListMembers(ctx context.Context, sc model.Scope) (ListMembersOutput, error)
	ValidateMembers(ctx context.Context, ids []string) error
}
