package scope

import (
	"context"

	"collab-srv/internal/model"
	"collab-srv/pkg/jwt"
)

type scopeKey struct{}

// NewScope creates a request scope from a verified token payload.
func NewScope(payload jwt.Payload) model.Scope {
	return model.Scope{
		UserID:   payload.UserID,
		Username: payload.Username,
		Email:    payload.Email,
		UserType: payload.UserType,
	}
}

// SetScopeToContext sets the scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope from context, or a zero scope if the
// request was not authenticated.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
