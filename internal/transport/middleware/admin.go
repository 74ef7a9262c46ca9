package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
	"github.com/heartmarshall/adaptation-catalog/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized if no admin is authenticated.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.AdminFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

// AdminOnly rejects requests that Auth did not authenticate.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := RequireAdmin(r.Context()); err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
