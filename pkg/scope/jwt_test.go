package scope

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskflow/internal/model"
)

func TestCreateTokenAndVerify(t *testing.T) {
	m := New("secret", time.Hour)

	token, err := m.CreateToken(model.Scope{UserID: "u1", Role: model.RoleTeamLead})
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	payload, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	sc := payload.Scope()
	if sc.UserID != "u1" || sc.Role != model.RoleTeamLead {
		t.Errorf("Scope() = %+v", sc)
	}
}

func TestVerify_Rejects(t *testing.T) {
	issued := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	m := &implManager{secretKey: []byte("secret"), ttl: time.Hour, now: func() time.Time { return issued }}

	valid, err := m.CreateToken(model.Scope{UserID: "u1", Role: model.RoleMember})
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	expired := &implManager{secretKey: m.secretKey, ttl: m.ttl, now: func() time.Time { return issued.Add(2 * time.Hour) }}
	other := New("other-secret", time.Hour)

	noneToken, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name  string
		mgr   Manager
		token string
	}{
		{"garbage", m, "not-a-token"},
		{"empty", m, ""},
		{"wrong secret", other, valid},
		{"expired", expired, valid},
		{"alg none", m, noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.mgr.Verify(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestCreateToken_RequiresUser(t *testing.T) {
	if _, err := New("secret", time.Hour).CreateToken(model.Scope{}); !errors.Is(err, ErrMissingScope) {
		t.Errorf("CreateToken() error = %v, want ErrMissingScope", err)
	}
}

func TestScopeContext(t *testing.T) {
	if _, ok := GetScopeFromContext(context.Background()); ok {
		t.Error("empty context should have no scope")
	}

	ctx := SetScopeToContext(context.Background(), model.Scope{UserID: "u1", Role: model.RoleAdmin})
	sc, ok := GetScopeFromContext(ctx)
	if !ok || !sc.IsAdmin() {
		t.Errorf("GetScopeFromContext() = %+v, %v", sc, ok)
	}
}
