package usecase

import (
	"context"
	"errors"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/user"
	repo "taskflow/internal/user/repository"
)

// Register creates a member account after checking the email is free.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.UserOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" {
		return user.UserOutput{}, user.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.UserOutput{}, err
	}
	if existing.ID != "" {
		return user.UserOutput{}, user.ErrEmailTaken
	}

	hash, err := uc.hashPassword(input.Password)
	if err != nil {
		return user.UserOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleMember,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return user.UserOutput{}, user.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.UserOutput{}, err
	}

	uc.l.Infof(ctx, "user registered: id=%s", u.ID)
	return user.UserOutput{User: u}, nil
}

// Login checks the credentials and issues a bearer token.
// Unknown emails and wrong passwords fail the same way.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.LoginOutput{}, err
	}
	if u.ID == "" || !checkPassword(u.PasswordHash, input.Password) {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.scope.CreateToken(model.Scope{UserID: u.ID, Role: u.Role})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login CreateToken: %v", err)
		return user.LoginOutput{}, err
	}

	return user.LoginOutput{Token: token, User: u}, nil
}
