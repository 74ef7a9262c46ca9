package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
	"github.com/heartmarshall/adaptation-catalog/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (string, error)
}

// Auth resolves a bearer token to the admin account and stores it in the
// request context. Requests without a token continue anonymously; a token
// that fails validation is rejected with 401, or 403 for a non-admin token.
func Auth(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			admin, err := validator.ValidateToken(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", slog.String("error", err.Error()))
				if errors.Is(err, domain.ErrForbidden) {
					writeError(w, http.StatusForbidden, "admin access required")
					return
				}
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := ctxutil.WithAdmin(r.Context(), admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken returns the token of an "Authorization: Bearer" header.
// The scheme is matched case-insensitively.
func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
