package usecase

import (
	"context"
	"sort"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/user"
	repo "taskflow/internal/user/repository"
)

// ListMembers returns every account the caller can assign tasks to, sorted by name.
func (uc *implUseCase) ListMembers(ctx context.Context, sc model.Scope) (user.ListMembersOutput, error) {
	if sc.UserID == "" {
		return user.ListMembersOutput{}, user.ErrUserNotFound
	}

	users, err := uc.repo.ListUsers(ctx, repo.ListUsersOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMembers ListUsers: %v", err)
		return user.ListMembersOutput{}, err
	}

	sort.SliceStable(users, func(i, j int) bool {
		return strings.ToLower(users[i].Name) < strings.ToLower(users[j].Name)
	})
	return user.ListMembersOutput{Members: users}, nil
}

// ValidateMembers returns ErrUnknownMember unless every id names an existing user.
func (uc *implUseCase) ValidateMembers(ctx context.Context, ids []string) error {
	unique := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return user.ErrUnknownMember
		}
		unique[id] = struct{}{}
	}
	if len(unique) == 0 {
		return nil
	}

	lookup := make([]string, 0, len(unique))
	for id := range unique {
		lookup = append(lookup, id)
	}

	users, err := uc.repo.ListUsers(ctx, repo.ListUsersOptions{IDs: lookup})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ValidateMembers ListUsers: %v", err)
		return err
	}

	found := make(map[string]struct{}, len(users))
	for _, u := range users {
		found[u.ID] = struct{}{}
	}
	for id := range unique {
		if _, ok := found[id]; !ok {
			return user.ErrUnknownMember
		}
	}
	return nil
}
