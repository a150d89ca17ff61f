package usecase

import (
	"context"
	"errors"

	"taskflow/internal/model"
	"taskflow/internal/user"
	repo "taskflow/internal/user/repository"
)

// Detail returns the caller's own account.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	u, err := uc.getUser(ctx, sc.UserID)
	if err != nil {
		return user.UserOutput{}, err
	}
	return user.UserOutput{User: u}, nil
}

// UpdateProfile changes name and/or email. Blank fields keep their value.
func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input user.UpdateProfileInput) (user.UserOutput, error) {
	existing, err := uc.getUser(ctx, sc.UserID)
	if err != nil {
		return user.UserOutput{}, err
	}

	email := coalesce(normalizeEmail(input.Email), existing.Email)
	if email != existing.Email {
		other, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
		if err != nil {
			uc.l.Errorf(ctx, "uc.UpdateProfile GetOneUser: %v", err)
			return user.UserOutput{}, err
		}
		if other.ID != "" && other.ID != existing.ID {
			return user.UserOutput{}, user.ErrEmailTaken
		}
	}

	u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:           existing.ID,
		Name:         coalesce(input.Name, existing.Name),
		Email:        email,
		PasswordHash: existing.PasswordHash,
	})
	if err != nil {
		return user.UserOutput{}, uc.mapUpdateErr(ctx, "uc.UpdateProfile", err)
	}
	return user.UserOutput{User: u}, nil
}

// UpdatePassword replaces the password after verifying the current one.
func (uc *implUseCase) UpdatePassword(ctx context.Context, sc model.Scope, input user.UpdatePasswordInput) error {
	existing, err := uc.getUser(ctx, sc.UserID)
	if err != nil {
		return err
	}

	if !checkPassword(existing.PasswordHash, input.CurrentPassword) {
		return user.ErrWrongPassword
	}

	hash, err := uc.hashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if _, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:           existing.ID,
		Name:         existing.Name,
		Email:        existing.Email,
		PasswordHash: hash,
	}); err != nil {
		return uc.mapUpdateErr(ctx, "uc.UpdatePassword", err)
	}

	uc.l.Infof(ctx, "password updated: id=%s", existing.ID)
	return nil
}

func (uc *implUseCase) getUser(ctx context.Context, id string) (model.User, error) {
	if id == "" {
		return model.User{}, user.ErrUserNotFound
	}
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getUser GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == "" {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (uc *implUseCase) mapUpdateErr(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, repo.ErrDuplicateEmail):
		return user.ErrEmailTaken
	case errors.Is(err, repo.ErrNotFound):
		return user.ErrUserNotFound
	}
	uc.l.Errorf(ctx, "%s UpdateUser: %v", op, err)
	return err
}
