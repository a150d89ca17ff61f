package usecase

import (
	"context"
	"errors"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/task"
	repo "taskflow/internal/task/repository"
)

// Detail retrieves a single task the caller can access.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.TaskOutput, error) {
	t, err := uc.getAccessible(ctx, sc, id)
	if err != nil {
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: t}, nil
}

// Update applies a partial update. Title and priority are required fields, so
// blank values keep the stored ones. A new due date is validated; clearing it
// or resending the stored one is always allowed.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.TaskOutput, error) {
	existing, err := uc.getAccessible(ctx, sc, input.ID)
	if err != nil {
		return task.TaskOutput{}, err
	}

	updated := existing
	if title := strings.TrimSpace(input.Title); title != "" {
		updated.Title = title
	}
	if raw := strings.TrimSpace(input.Priority); raw != "" {
		if updated.Priority, err = parsePriority(raw, model.PriorityLow); err != nil {
			return task.TaskOutput{}, err
		}
	}
	if input.Description != nil {
		updated.Description = strings.TrimSpace(*input.Description)
	}
	if input.DueDate != nil {
		due := strings.TrimSpace(*input.DueDate)
		if due != "" && due != existing.DueDate {
			if err := uc.validateDueDate(due); err != nil {
				return task.TaskOutput{}, err
			}
		}
		updated.DueDate = due
	}
	if input.Completed != nil {
		updated.Completed = *input.Completed
	}
	if input.AssignedTo != nil {
		if updated.AssignedTo, err = uc.checkAssignees(ctx, input.AssignedTo); err != nil {
			return task.TaskOutput{}, err
		}
	}
	if input.Subtasks != nil {
		if updated.Subtasks, err = cleanSubtasks(input.Subtasks); err != nil {
			return task.TaskOutput{}, err
		}
	}

	t, err := uc.save(ctx, updated)
	if err != nil {
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: t}, nil
}

// Delete removes a task. Only its owner or an admin may delete it.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.getAccessible(ctx, sc, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != sc.UserID && !sc.IsAdmin() {
		return task.ErrForbidden
	}

	if err := uc.repo.DeleteTask(ctx, existing.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

// ToggleSubtask flips the completion of the subtask at index.
func (uc *implUseCase) ToggleSubtask(ctx context.Context, sc model.Scope, id string, index int) (task.TaskOutput, error) {
	existing, err := uc.getAccessible(ctx, sc, id)
	if err != nil {
		return task.TaskOutput{}, err
	}
	if index < 0 || index >= len(existing.Subtasks) {
		return task.TaskOutput{}, task.ErrSubtaskNotFound
	}

	subtasks := make([]model.Subtask, len(existing.Subtasks))
	copy(subtasks, existing.Subtasks)
	subtasks[index].Completed = !subtasks[index].Completed
	existing.Subtasks = subtasks

	t, err := uc.save(ctx, existing)
	if err != nil {
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: t}, nil
}
