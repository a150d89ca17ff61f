package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskflow/internal/model"
	repo "taskflow/internal/user/repository"
)

// CreateUser inserts a new user document and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	now := r.now().UTC()
	doc := userDoc{
		ID:        primitive.NewObjectID(),
		Name:      opt.Name,
		Email:     opt.Email,
		Password:  opt.PasswordHash,
		Role:      string(opt.Role),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.coll().InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return doc.toModel(), nil
}

// GetOneUser retrieves a single user by the provided filters.
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	filter, ok := r.buildGetOneFilter(opt)
	if !ok {
		return model.User{}, nil
	}

	var doc userDoc
	err := r.coll().FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return doc.toModel(), nil
}

// ListUsers returns the users matching the options, ordered by name.
func (r *implRepository) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]model.User, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cur, err := r.coll().Find(ctx, r.buildListFilter(opt), findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}

	users := make([]model.User, len(docs))
	for i, d := range docs {
		users[i] = d.toModel()
	}
	return users, nil
}

// UpdateUser overwrites the mutable fields and returns the updated entity.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	oid, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return model.User{}, repo.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":      opt.Name,
		"email":     opt.Email,
		"password":  opt.PasswordHash,
		"updatedAt": r.now().UTC(),
	}}
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDoc
	err = r.coll().FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, after).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return model.User{}, repo.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return model.User{}, repo.ErrDuplicateEmail
	case err != nil:
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return doc.toModel(), nil
}
