package usecase

import (
	"context"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/task"
	repo "taskflow/internal/task/repository"
)

// Create validates and stores a new task owned by the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.TaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.TaskOutput{}, task.ErrTitleRequired
	}

	priority, err := parsePriority(input.Priority, model.PriorityLow)
	if err != nil {
		return task.TaskOutput{}, err
	}

	due := strings.TrimSpace(input.DueDate)
	if due != "" {
		if err := uc.validateDueDate(due); err != nil {
			return task.TaskOutput{}, err
		}
	}

	subtasks, err := cleanSubtasks(input.Subtasks)
	if err != nil {
		return task.TaskOutput{}, err
	}
	if len(subtasks) == 0 {
		subtasks = uc.checklist.Subtasks(input.Description)
	}

	assignees, err := uc.checkAssignees(ctx, input.AssignedTo)
	if err != nil {
		return task.TaskOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		OwnerID:     sc.UserID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Priority:    priority,
		DueDate:     due,
		Completed:   input.Completed,
		AssignedTo:  assignees,
		Subtasks:    subtasks,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.TaskOutput{}, err
	}

	return task.TaskOutput{Task: t}, nil
}
