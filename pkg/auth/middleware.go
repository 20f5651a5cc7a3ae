package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const operatorKey contextKey = "operator"

// WithOperator marks the context as authenticated with the operator token.
func WithOperator(ctx context.Context) context.Context {
	return context.WithValue(ctx, operatorKey, true)
}

// IsOperatorFromContext reports whether RequireToken admitted the request.
func IsOperatorFromContext(ctx context.Context) bool {
	v, _ := ctx.Value(operatorKey).(bool)
	return v
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(h[len(prefix):]), true
}

// RequireToken admits only requests carrying the given bearer token. An empty
// token rejects everything.
func RequireToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := BearerToken(r)
			if !ok || token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "Unauthorized."})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithOperator(r.Context())))
		})
	}
}
