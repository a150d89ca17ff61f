package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskflow/internal/model"
	repo "taskflow/internal/task/repository"
)

// CreateTask inserts a new task document and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := r.now().UTC()
	t := model.Task{
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

	doc := newTaskDoc(t)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll().InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	t.ID = doc.ID.Hex()
	return t, nil
}

// GetOneTask retrieves a single task by id.
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	oid, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return model.Task{}, nil
	}

	var doc storedTaskDoc
	err = r.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return doc.toModel(), nil
}

// ListTasks returns the matching tasks, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.coll().Find(ctx, r.buildListFilter(opt), findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	tasks := []model.Task{}
	for cur.Next(ctx) {
		var doc storedTaskDoc
		if err := cur.Decode(&doc); err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		r.l.Errorf(ctx, "%s cursor: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask overwrites the mutable fields and returns the updated entity.
// Stored legacy values are rewritten in their canonical form.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	oid, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return model.Task{}, repo.ErrNotFound
	}

	doc := newTaskDoc(model.Task{
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		Completed:   opt.Completed,
		AssignedTo:  opt.AssignedTo,
		Subtasks:    opt.Subtasks,
	})
	update := bson.M{"$set": bson.M{
		"title":       doc.Title,
		"description": doc.Description,
		"priority":    doc.Priority,
		"dueDate":     doc.DueDate,
		"completed":   doc.Completed,
		"assignedTo":  doc.AssignedTo,
		"subtasks":    doc.Subtasks,
		"updatedAt":   r.now().UTC(),
	}}
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var stored storedTaskDoc
	err = r.coll().FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, after).Decode(&stored)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return stored.toModel(), nil
}

// DeleteTask removes a task by id.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repo.ErrNotFound
	}

	res, err := r.coll().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}
