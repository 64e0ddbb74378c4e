package middleware

import (
	"net/http"

	pnet "hyperflow/internal/platform/net"
)

// VaultHeader copies the X-Vault-ID header onto the request context so
// downstream handlers and logs can scope by vault
func VaultHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if v := r.Header.Get("X-Vault-ID"); v != "" {
			r = r.WithContext(pnet.WithRequest(r.Context(), "", v))
		}
		next.ServeHTTP(w, r)
	})
}
