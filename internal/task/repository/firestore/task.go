package firestore

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskflow/internal/model"
	repo "taskflow/internal/task/repository"
)

// CreateTask writes a new task document under a generated id.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := r.now().UTC()
	t := model.Task{
		ID:          uuid.NewString(),
		OwnerID:     opt.OwnerID,
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		Completed:   opt.Completed,
		AssignedTo:  opt.AssignedTo,
		Subtasks:    opt.Subtasks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.tasks().Doc(t.ID).Create(ctx, newTaskDoc(t)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single task by id.
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if !validID(opt.ID) {
		return model.Task{}, nil
	}

	snap, err := r.tasks().Doc(opt.ID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return taskFromData(snap.Ref.ID, snap.Data()), nil
}

// ListTasks returns the matching tasks, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	iter := r.listQuery(opt).Documents(ctx)
	defer iter.Stop()

	tasks := []model.Task{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		t := taskFromData(snap.Ref.ID, snap.Data())
		if matches(t, opt) {
			tasks = append(tasks, t)
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// UpdateTask overwrites the mutable fields in a transaction and returns the
// updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	if !validID(opt.ID) {
		return model.Task{}, repo.ErrNotFound
	}
	ref := r.tasks().Doc(opt.ID)

	var updated model.Task
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return repo.ErrNotFound
		}
		if err != nil {
			return err
		}

		current := taskFromData(snap.Ref.ID, snap.Data())
		current.Title = opt.Title
		current.Description = opt.Description
		current.Priority = opt.Priority
		current.DueDate = opt.DueDate
		current.Completed = opt.Completed
		current.AssignedTo = opt.AssignedTo
		current.Subtasks = opt.Subtasks
		current.UpdatedAt = r.now().UTC()
		updated = current
		return tx.Set(ref, newTaskDoc(current))
	})

	switch {
	case errors.Is(err, repo.ErrNotFound):
		return model.Task{}, repo.ErrNotFound
	case err != nil:
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return updated, nil
}

// DeleteTask removes a task by id.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if !validID(id) {
		return repo.ErrNotFound
	}

	_, err := r.tasks().Doc(id).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func validID(id string) bool {
	return id != "" && !strings.Contains(id, "/")
}
