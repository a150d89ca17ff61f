package scope

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskflow/internal/model"
)

type implManager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func (m *implManager) CreateToken(sc model.Scope) (string, error) {
	if sc.UserID == "" {
		return "", ErrMissingScope
	}

	now := m.now()
	payload := Payload{
		Role: string(sc.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sc.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("scope: sign token: %w", err)
	}
	return signed, nil
}

func (m *implManager) Verify(tokenString string) (Payload, error) {
	var payload Payload
	token, err := jwt.ParseWithClaims(tokenString, &payload, func(t *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || payload.Subject == "" {
		return Payload{}, ErrInvalidToken
	}
	return payload, nil
}
