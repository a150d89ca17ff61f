package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskflow/internal/model"
	repo "taskflow/internal/user/repository"
)

// CreateUser reserves the email and writes the user document in one transaction.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	id := uuid.NewString()
	now := r.now().UTC()
	doc := userDoc{
		Name:      opt.Name,
		Email:     opt.Email,
		Password:  opt.PasswordHash,
		Role:      string(opt.Role),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := r.reserveEmail(tx, opt.Email, id); err != nil {
			return err
		}
		return tx.Create(r.users().Doc(id), doc)
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return model.User{}, repo.ErrDuplicateEmail
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return doc.toModel(id), nil
}

// GetOneUser retrieves a single user by id or email.
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	switch {
	case opt.ID != "":
		if strings.Contains(opt.ID, "/") {
			return model.User{}, nil
		}
		snap, err := r.users().Doc(opt.ID).Get(ctx)
		if status.Code(err) == codes.NotFound {
			return model.User{}, nil
		}
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
			return model.User{}, repo.ErrFailedToGet
		}
		return r.decode(ctx, snap)

	case opt.Email != "":
		iter := r.users().Where("email", "==", strings.ToLower(opt.Email)).Limit(1).Documents(ctx)
		defer iter.Stop()
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return model.User{}, nil
		}
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
			return model.User{}, repo.ErrFailedToGet
		}
		return r.decode(ctx, snap)
	}
	return model.User{}, nil
}

// ListUsers returns the users matching the options, ordered by name when listing everyone.
func (r *implRepository) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]model.User, error) {
	if len(opt.IDs) > 0 {
		return r.getAll(ctx, opt.IDs)
	}

	iter := r.users().OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var users []model.User
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
			return nil, repo.ErrFailedToList
		}
		u, err := r.decode(ctx, snap)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *implRepository) getAll(ctx context.Context, ids []string) ([]model.User, error) {
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		if id == "" || strings.Contains(id, "/") {
			continue
		}
		refs = append(refs, r.users().Doc(id))
	}
	if len(refs) == 0 {
		return nil, nil
	}

	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}

	users := make([]model.User, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		u, err := r.decode(ctx, snap)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		users = append(users, u)
	}
	return users, nil
}

// UpdateUser overwrites the mutable fields. A changed email moves its reservation.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	if opt.ID == "" || strings.Contains(opt.ID, "/") {
		return model.User{}, repo.ErrNotFound
	}
	ref := r.users().Doc(opt.ID)

	var updated userDoc
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return repo.ErrNotFound
		}
		if err != nil {
			return err
		}

		var doc userDoc
		if err := snap.DataTo(&doc); err != nil {
			return err
		}

		if doc.Email != opt.Email {
			if err := r.reserveEmail(tx, opt.Email, opt.ID); err != nil {
				return err
			}
			if err := tx.Delete(r.emailRef(doc.Email)); err != nil {
				return err
			}
		}

		doc.Name = opt.Name
		doc.Email = opt.Email
		doc.Password = opt.PasswordHash
		doc.UpdatedAt = r.now().UTC()
		updated = doc
		return tx.Set(ref, doc)
	})

	switch {
	case errors.Is(err, repo.ErrNotFound):
		return model.User{}, repo.ErrNotFound
	case errors.Is(err, repo.ErrDuplicateEmail):
		return model.User{}, repo.ErrDuplicateEmail
	case err != nil:
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return updated.toModel(opt.ID), nil
}

// reserveEmail claims email for userID inside tx, failing with ErrDuplicateEmail when taken.
func (r *implRepository) reserveEmail(tx *firestore.Transaction, email, userID string) error {
	ref := r.emailRef(email)
	_, err := tx.Get(ref)
	switch status.Code(err) {
	case codes.OK:
		return repo.ErrDuplicateEmail
	case codes.NotFound:
		return tx.Create(ref, emailDoc{UserID: userID})
	default:
		return err
	}
}

func (r *implRepository) decode(ctx context.Context, snap *firestore.DocumentSnapshot) (model.User, error) {
	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		r.l.Errorf(ctx, "%s %s: %v", r.dsn("decode"), snap.Ref.ID, err)
		return model.User{}, repo.ErrFailedToGet
	}
	return doc.toModel(snap.Ref.ID), nil
}
