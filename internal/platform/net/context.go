// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyVaultID ctxKey = "vault_id"

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, vaultID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if vaultID != "" {
		ctx = context.WithValue(ctx, keyVaultID, vaultID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// VaultID returns the vault id on the context if present
func VaultID(ctx context.Context) string {
	if v, ok := ctx.Value(keyVaultID).(string); ok {
		return v
	}
	return ""
}
