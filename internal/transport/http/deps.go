package http

import (
	"context"

	"github.com/go-auth-api/internal/domain"
	jwtinfra "github.com/go-auth-api/internal/infrastructure/jwt"
	"github.com/go-auth-api/internal/infrastructure/smtp"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	AddTokenID(ctx context.Context, userID, jti string) error
	RemoveTokenID(ctx context.Context, userID, jti string) error
	ClearTokenIDs(ctx context.Context, userID string) error
}

// TokenProvider is the minimal interface the router requires from a token issuer.
type TokenProvider interface {
	Sign(userID string) (token, tokenID string, err error)
	Verify(token string) (*jwtinfra.Claims, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo UserRepository
	Tokens   TokenProvider
	Mailer   smtp.Mailer
}
