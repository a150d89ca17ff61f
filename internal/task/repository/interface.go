package repository

import (
	"context"

	"taskflow/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// GetOneTask returns a zero Task (empty ID) and no error when nothing matches.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
