package usecase

import (
	"context"
	"errors"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/task"
	repo "taskflow/internal/task/repository"
	"taskflow/internal/user"
)

func (uc *implUseCase) today() string {
	return uc.dates.Today(uc.now())
}

// parsePriority normalises p; empty yields fallback.
func parsePriority(p string, fallback model.Priority) (model.Priority, error) {
	if strings.TrimSpace(p) == "" {
		return fallback, nil
	}
	priority, ok := model.ParsePriority(p)
	if !ok {
		return "", task.ErrInvalidPriority
	}
	return priority, nil
}

// validateDueDate checks a user-supplied due date against today.
func (uc *implUseCase) validateDueDate(due string) error {
	switch model.ValidateDueDate(due, uc.today()) {
	case nil:
		return nil
	case model.ErrDueDatePast:
		return task.ErrPastDueDate
	default:
		return task.ErrInvalidDueDate
	}
}

// cleanSubtasks trims titles and rejects blank ones. A nil input stays nil.
func cleanSubtasks(in []model.Subtask) ([]model.Subtask, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]model.Subtask, len(in))
	for i, st := range in {
		title := strings.TrimSpace(st.Title)
		if title == "" {
			return nil, task.ErrInvalidSubtask
		}
		out[i] = model.Subtask{Title: title, Completed: st.Completed}
	}
	return out, nil
}

// checkAssignees de-duplicates ids and verifies each is a registered user.
func (uc *implUseCase) checkAssignees(ctx context.Context, ids []string) ([]string, error) {
	if ids == nil {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	if err := uc.users.ValidateMembers(ctx, out); err != nil {
		if errors.Is(err, user.ErrUnknownMember) {
			return nil, task.ErrUnknownAssignee
		}
		uc.l.Errorf(ctx, "uc.checkAssignees ValidateMembers: %v", err)
		return nil, err
	}
	return out, nil
}

// getAccessible loads a task the caller owns, is assigned to, or administers.
func (uc *implUseCase) getAccessible(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	if id == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getAccessible GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	if !sc.IsAdmin() && !t.CanAccess(sc.UserID) {
		return model.Task{}, task.ErrForbidden
	}
	return t, nil
}

func (uc *implUseCase) save(ctx context.Context, t model.Task) (model.Task, error) {
	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		AssignedTo:  t.AssignedTo,
		Subtasks:    t.Subtasks,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.save UpdateTask: %v", err)
		return model.Task{}, err
	}
	return updated, nil
}
