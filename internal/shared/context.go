package shared

import "context"

// Identity describes the authenticated caller attached to a request by the
// auth middleware. Handlers use it as the sole source of "who is calling".
type Identity struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

type identityContextKey struct{}

// ContextWithIdentity stores the caller identity in context.
func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext extracts the caller identity from context.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityContextKey{}).(*Identity)
	return id
}
