package scope

import (
	"github.com/golang-jwt/jwt/v5"

	"taskflow/internal/model"
)

// Payload is the claim set carried by a token. The subject is the user id.
type Payload struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Scope converts the payload into the caller scope used by use cases.
func (p Payload) Scope() model.Scope {
	return model.Scope{
		UserID: p.Subject,
		Role:   model.Role(p.Role),
	}
}
