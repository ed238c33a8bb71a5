// Package auth resolves the current actor from the external identity
// provider and carries it through request context. No package-level state:
// everything downstream takes the user from the context it was handed.
package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"candela/internal/domain"
	"candela/internal/errors"
)

// IdentityProvider is the external identity collaborator. A nil user with a
// nil error means the token is unknown (unauthenticated).
type IdentityProvider interface {
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

type contextKey struct{}

var userKey contextKey

// WithUser returns a context carrying the resolved user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom extracts the current user, or an UnauthorizedError if none was
// resolved for this request.
func UserFrom(ctx context.Context) (*domain.User, error) {
	user, ok := ctx.Value(userKey).(*domain.User)
	if !ok || user == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	return user, nil
}

// RequireOwner extracts the current user and rejects non-owner roles.
func RequireOwner(ctx context.Context) (*domain.User, error) {
	user, err := UserFrom(ctx)
	if err != nil {
		return nil, err
	}
	if !user.IsOwner() {
		return nil, errors.NewForbiddenError("owner role required")
	}
	return user, nil
}

// Middleware resolves the request token against the identity provider and
// stores the user in context. Requests without a resolvable user are
// rejected with 401; identity-provider outages surface as 503, never as a
// crash further in.
func Middleware(provider IdentityProvider, tokenHeader string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, tokenHeader)
			if token == "" {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
				return
			}

			user, err := provider.CurrentUser(r.Context(), token)
			if err != nil {
				logger.Error("identity provider lookup failed", zap.Error(err))
				writeAuthError(w, http.StatusServiceUnavailable, "IDENTITY_UNAVAILABLE", "failed to load user")
				return
			}
			if user == nil {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func extractToken(r *http.Request, header string) string {
	value := r.Header.Get(header)
	return strings.TrimPrefix(value, "Bearer ")
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + code + `","message":"` + message + `"}`))
}
