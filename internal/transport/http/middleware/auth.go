package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-auth-api/internal/domain"
	jwtinfra "github.com/go-auth-api/internal/infrastructure/jwt"
)

type contextKey string

const (
	userKey contextKey = "user"
	jtiKey  contextKey = "jti"
)

// userStore is the slice of the user repository the middleware needs.
type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

// tokenVerifier verifies a bearer token and extracts its claims.
type tokenVerifier interface {
	Verify(token string) (*jwtinfra.Claims, error)
}

// Auth returns middleware that validates the Bearer JWT, loads the user and
// gates on jti membership in the user's valid-token set. Signature validity
// alone is not enough: a revoked jti is rejected even while the token is
// cryptographically unexpired. Every failure collapses into the same 401.
func Auth(verifier tokenVerifier, users userStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeJSONError(w, http.StatusUnauthorized, domain.ErrInvalidAuth.Error())
				return
			}
			claims, err := verifier.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, domain.ErrInvalidAuth.Error())
				return
			}
			u, err := users.Get(r.Context(), claims.Subject)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, domain.ErrInvalidAuth.Error())
				return
			}
			if !u.HasTokenID(claims.ID) {
				writeJSONError(w, http.StatusUnauthorized, domain.ErrInvalidAuth.Error())
				return
			}
			ctx := context.WithValue(r.Context(), userKey, u)
			ctx = context.WithValue(ctx, jtiKey, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey).(*domain.User)
	return u, ok
}

// TokenIDFromContext extracts the acting token id (jti) from the request context.
func TokenIDFromContext(ctx context.Context) (string, bool) {
	jti, ok := ctx.Value(jtiKey).(string)
	return jti, ok
}
