package task

import (
	"context"

	"taskflow/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (TaskOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (TaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (TaskOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Checklist and dashboard
	ToggleSubtask(ctx context.Context, sc model.Scope, id string, index int) (TaskOutput, error)
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
}
