package scope

import "errors"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingScope = errors.New("missing scope")
)
