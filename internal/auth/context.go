package auth

import "context"

type principalContextKey struct{}

func WithPrincipal(ctx context.Context, principal ClientPrincipal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal.Clone())
}

func PrincipalFromContext(ctx context.Context) (ClientPrincipal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(ClientPrincipal)
	if !ok {
		return ClientPrincipal{}, false
	}
	return principal.Clone(), true
}
