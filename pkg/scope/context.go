package scope

import (
	"context"

	"taskflow/internal/model"
)

type scopeKey struct{}

// SetScopeToContext stores the authenticated caller in ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the caller stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	return sc, ok && sc.UserID != ""
}
