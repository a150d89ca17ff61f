package scope

import (
	"time"

	"taskflow/internal/model"
)

// Manager issues and verifies bearer tokens.
type Manager interface {
	CreateToken(sc model.Scope) (string, error)
	Verify(token string) (Payload, error)
}

// New creates a Manager that signs tokens with secretKey (HS256).
// Tokens expire ttl after they are issued.
func New(secretKey string, ttl time.Duration) Manager {
	return &implManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}
