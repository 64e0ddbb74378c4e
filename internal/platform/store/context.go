package store

import "context"

type (
	vaultKey struct{}
	reqIDKey struct{}
)

// WithVault attaches a vault id to the context
func WithVault(ctx context.Context, vaultID string) context.Context {
	return context.WithValue(ctx, vaultKey{}, vaultID)
}

// VaultID retrieves a vault id from context if present
func VaultID(ctx context.Context) (string, bool) {
	v := ctx.Value(vaultKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// WithRequestID attaches a request id to the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reqIDKey{}, id)
}

// RequestID retrieves a request id from context if present
func RequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(reqIDKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}
