package httpapi

import "context"

// Principal describes an authenticated caller as established by the
// authentication gate.
type Principal struct {
	ID    int64
	Email string
	Role  string
}

type principalContextKey struct{}

func contextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the principal set by the authentication
// gate, or false when the request was anonymous.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(*Principal)
	return p, ok
}
