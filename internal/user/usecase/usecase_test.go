package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskflow/internal/model"
	"taskflow/internal/user"
	repo "taskflow/internal/user/repository"
	"taskflow/pkg/log"
	"taskflow/pkg/scope"
)

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	users  map[string]model.User
	nextID int
	err    error
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[string]model.User{}}
}

func (r *memRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	if r.err != nil {
		return model.User{}, r.err
	}
	for _, u := range r.users {
		if u.Email == opt.Email {
			return model.User{}, repo.ErrDuplicateEmail
		}
	}
	r.nextID++
	u := model.User{
		ID:           fmt.Sprintf("u%d", r.nextID),
		Name:         opt.Name,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		Role:         opt.Role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *memRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	if r.err != nil {
		return model.User{}, r.err
	}
	if opt.ID != "" {
		return r.users[opt.ID], nil
	}
	for _, u := range r.users {
		if u.Email == opt.Email {
			return u, nil
		}
	}
	return model.User{}, nil
}

func (r *memRepo) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []model.User
	if len(opt.IDs) == 0 {
		for _, u := range r.users {
			out = append(out, u)
		}
		return out, nil
	}
	for _, id := range opt.IDs {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memRepo) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	u, ok := r.users[opt.ID]
	if !ok {
		return model.User{}, repo.ErrNotFound
	}
	u.Name, u.Email, u.PasswordHash = opt.Name, opt.Email, opt.PasswordHash
	r.users[u.ID] = u
	return u, nil
}

func newTestUseCase(r *memRepo) *implUseCase {
	uc := New(log.NewNop(), r, scope.New("test-secret", time.Hour))
	uc.hashCost = bcrypt.MinCost
	return uc
}

func register(t *testing.T, uc *implUseCase, name, email, password string) model.User {
	t.Helper()
	out, err := uc.Register(context.Background(), user.RegisterInput{Name: name, Email: email, Password: password})
	if err != nil {
		t.Fatalf("Register(%s) error = %v", email, err)
	}
	return out.User
}

func TestRegister(t *testing.T) {
	uc := newTestUseCase(newMemRepo())

	u := register(t, uc, " Ada ", " Ada@Example.com ", "secret1")
	if u.Name != "Ada" || u.Email != "ada@example.com" {
		t.Errorf("unexpected user %+v", u)
	}
	if u.Role != model.RoleMember {
		t.Errorf("Role = %q, want member", u.Role)
	}
	if u.PasswordHash == "secret1" || !checkPassword(u.PasswordHash, "secret1") {
		t.Error("password must be stored as a bcrypt hash")
	}

	tests := []struct {
		name  string
		input user.RegisterInput
		want  error
	}{
		{"duplicate email differs only by case", user.RegisterInput{Name: "B", Email: "ADA@example.com", Password: "secret1"}, user.ErrEmailTaken},
		{"missing name", user.RegisterInput{Email: "b@example.com", Password: "secret1"}, user.ErrInvalidPayload},
		{"short password", user.RegisterInput{Name: "B", Email: "b@example.com", Password: "123"}, user.ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Register(context.Background(), tt.input); !errors.Is(err, tt.want) {
				t.Errorf("Register() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	uc := newTestUseCase(newMemRepo())
	u := register(t, uc, "Ada", "ada@example.com", "secret1")

	out, err := uc.Login(context.Background(), user.LoginInput{Email: "ADA@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if out.User.ID != u.ID || out.Token == "" {
		t.Fatalf("unexpected output %+v", out)
	}

	payload, err := uc.scope.Verify(out.Token)
	if err != nil || payload.Scope().UserID != u.ID {
		t.Errorf("token does not identify the user: %+v, %v", payload, err)
	}

	for _, in := range []user.LoginInput{
		{Email: "ada@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "secret1"},
		{},
	} {
		if _, err := uc.Login(context.Background(), in); !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("Login(%+v) error = %v, want ErrInvalidCredentials", in, err)
		}
	}
}

func TestUpdateProfile(t *testing.T) {
	uc := newTestUseCase(newMemRepo())
	ada := register(t, uc, "Ada", "ada@example.com", "secret1")
	register(t, uc, "Bob", "bob@example.com", "secret1")
	sc := model.Scope{UserID: ada.ID}

	out, err := uc.UpdateProfile(context.Background(), sc, user.UpdateProfileInput{Name: "Ada L."})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if out.User.Name != "Ada L." || out.User.Email != "ada@example.com" {
		t.Errorf("blank email must keep the old value: %+v", out.User)
	}

	if _, err := uc.UpdateProfile(context.Background(), sc, user.UpdateProfileInput{Email: "BOB@example.com"}); !errors.Is(err, user.ErrEmailTaken) {
		t.Errorf("UpdateProfile() error = %v, want ErrEmailTaken", err)
	}

	if _, err := uc.UpdateProfile(context.Background(), model.Scope{UserID: "ghost"}, user.UpdateProfileInput{Name: "x"}); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("UpdateProfile() error = %v, want ErrUserNotFound", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	uc := newTestUseCase(newMemRepo())
	ada := register(t, uc, "Ada", "ada@example.com", "secret1")
	sc := model.Scope{UserID: ada.ID}

	if err := uc.UpdatePassword(context.Background(), sc, user.UpdatePasswordInput{CurrentPassword: "nope", NewPassword: "secret2"}); !errors.Is(err, user.ErrWrongPassword) {
		t.Errorf("error = %v, want ErrWrongPassword", err)
	}
	if err := uc.UpdatePassword(context.Background(), sc, user.UpdatePasswordInput{CurrentPassword: "secret1", NewPassword: "x"}); !errors.Is(err, user.ErrPasswordTooShort) {
		t.Errorf("error = %v, want ErrPasswordTooShort", err)
	}
	if err := uc.UpdatePassword(context.Background(), sc, user.UpdatePasswordInput{CurrentPassword: "secret1", NewPassword: "secret2"}); err != nil {
		t.Fatalf("UpdatePassword() error = %v", err)
	}

	if _, err := uc.Login(context.Background(), user.LoginInput{Email: "ada@example.com", Password: "secret2"}); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
}

func TestListAndValidateMembers(t *testing.T) {
	uc := newTestUseCase(newMemRepo())
	zed := register(t, uc, "zed", "z@example.com", "secret1")
	ada := register(t, uc, "Ada", "a@example.com", "secret1")

	out, err := uc.ListMembers(context.Background(), model.Scope{UserID: zed.ID})
	if err != nil {
		t.Fatalf("ListMembers() error = %v", err)
	}
	if len(out.Members) != 2 || out.Members[0].ID != ada.ID {
		t.Errorf("members should be sorted by name: %+v", out.Members)
	}

	tests := []struct {
		name string
		ids  []string
		want error
	}{
		{"none", nil, nil},
		{"known with duplicates", []string{ada.ID, zed.ID, ada.ID}, nil},
		{"unknown", []string{ada.ID, "ghost"}, user.ErrUnknownMember},
		{"blank", []string{""}, user.ErrUnknownMember},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := uc.ValidateMembers(context.Background(), tt.ids); !errors.Is(err, tt.want) {
				t.Errorf("ValidateMembers() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRepositoryFailure(t *testing.T) {
	r := newMemRepo()
	r.err = errors.New("connection refused")
	uc := newTestUseCase(r)

	if _, err := uc.Register(context.Background(), user.RegisterInput{Name: "A", Email: "a@example.com", Password: "secret1"}); err == nil {
		t.Error("expected repository error to surface")
	}
}
