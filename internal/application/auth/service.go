package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-auth-api/internal/domain"
	"github.com/go-auth-api/internal/infrastructure/smtp"
	"github.com/go-auth-api/internal/pkg/id"
	"github.com/go-auth-api/internal/pkg/otp"
	"github.com/go-auth-api/internal/pkg/password"
)

// Result is what the token-returning flows hand back to the transport layer.
type Result struct {
	Token string
	User  *domain.User
}

type Service interface {
	Login(ctx context.Context, req domain.LoginRequest) (*Result, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*Result, error)
	RequestPasswordReset(ctx context.Context, email, requestIP string) error
	VerifyPasswordReset(ctx context.Context, email, code string) error
	ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error
	VerifyEmail(ctx context.Context, user *domain.User, actingJTI, code string) (*Result, error)
	ResendVerification(ctx context.Context, user *domain.User) error
}

// userStore is the slice of the user repository the flows need. Token set
// mutations are dedicated atomic operations, never read-modify-write.
type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	AddTokenID(ctx context.Context, userID, jti string) error
	RemoveTokenID(ctx context.Context, userID, jti string) error
	ClearTokenIDs(ctx context.Context, userID string) error
}

type tokenSigner interface {
	Sign(userID string) (token, tokenID string, err error)
}

type service struct {
	repo           userStore
	tokens         tokenSigner
	mailer         smtp.Mailer
	codeExpiry     time.Duration
	resendCooldown time.Duration
}

type ServiceDeps struct {
	UserRepo       userStore
	Tokens         tokenSigner
	Mailer         smtp.Mailer
	CodeExpiry     time.Duration
	ResendCooldown time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:           deps.UserRepo,
		tokens:         deps.Tokens,
		mailer:         deps.Mailer,
		codeExpiry:     deps.CodeExpiry,
		resendCooldown: deps.ResendCooldown,
	}
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*Result, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email and wrong password must be indistinguishable.
		return nil, fmt.Errorf("login: %w", domain.ErrInvalidCredentials)
	}
	if !password.Check(u.PasswordHash, req.Password) {
		return nil, fmt.Errorf("login: %w", domain.ErrInvalidCredentials)
	}

	token, jti, err := s.tokens.Sign(u.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddTokenID(ctx, u.UserID, jti); err != nil {
		return nil, err
	}
	return &Result{Token: token, User: u}, nil
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*Result, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("register: %w", domain.ErrUserExists)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	code, err := otp.Generate()
	if err != nil {
		return nil, err
	}
	codeHash := otp.Digest(code)

	now := time.Now().UTC()
	expiry := now.Add(s.codeExpiry)
	u := &domain.User{
		UserID:       id.New(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		// New users start unverified; verification happens via the emailed
		// code. The resend cooldown clock starts on the first explicit
		// resend, not at registration.
		Verified:              false,
		VerificationToken:     &codeHash,
		VerificationExpiresAt: &expiry,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, err
	}

	token, jti, err := s.tokens.Sign(u.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddTokenID(ctx, u.UserID, jti); err != nil {
		return nil, err
	}
	u.TokenIDs = []string{jti}

	if err := s.mailer.SendVerificationEmail(u.Email, code); err != nil {
		slog.Warn("failed to send verification email", "user_id", u.UserID, "err", err)
	}
	return &Result{Token: token, User: u}, nil
}

func (s *service) RequestPasswordReset(ctx context.Context, email, requestIP string) error {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// No side effect and no user-existence leak: report success anyway.
			return nil
		}
		return err
	}

	code, err := otp.Generate()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if err := s.repo.Update(ctx, u.UserID, map[string]interface{}{
		"reset_token":        otp.Digest(code),
		"reset_requested_at": now,
		"reset_expires_at":   now.Add(s.codeExpiry),
		"reset_request_ip":   requestIP,
	}); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetEmail(u.Email, code); err != nil {
		slog.Warn("failed to send password reset email", "user_id", u.UserID, "err", err)
	}
	return nil
}

func (s *service) VerifyPasswordReset(ctx context.Context, email, code string) error {
	_, err := s.resetTarget(ctx, email, code)
	return err
}

func (s *service) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	u, err := s.resetTarget(ctx, email, code)
	if err != nil {
		return err
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, u.UserID, map[string]interface{}{
		"password_hash":           hash,
		"reset_token":             nil,
		"reset_requested_at":      nil,
		"reset_expires_at":        nil,
		"reset_request_ip":        nil,
		"last_password_change_at": time.Now().UTC(),
	}); err != nil {
		return err
	}
	// Changing the credential revokes every outstanding session.
	return s.repo.ClearTokenIDs(ctx, u.UserID)
}

// resetTarget looks up the user and checks the presented code against the
// stored digest and expiry. Every failure mode yields ErrInvalidResetToken.
func (s *service) resetTarget(ctx context.Context, email, code string) (*domain.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", domain.ErrInvalidResetToken)
	}
	if u.ResetToken == nil || *u.ResetToken != otp.Digest(code) {
		return nil, fmt.Errorf("reset: %w", domain.ErrInvalidResetToken)
	}
	if u.ResetExpiresAt == nil || u.ResetExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("reset: %w", domain.ErrInvalidResetToken)
	}
	return u, nil
}

func (s *service) VerifyEmail(ctx context.Context, u *domain.User, actingJTI, code string) (*Result, error) {
	if u.Verified {
		return nil, fmt.Errorf("verify: %w", domain.ErrAlreadyVerified)
	}
	if u.VerificationToken == nil || *u.VerificationToken != otp.Digest(code) {
		return nil, fmt.Errorf("verify: %w", domain.ErrInvalidVerification)
	}
	if u.VerificationExpiresAt == nil || u.VerificationExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("verify: %w", domain.ErrInvalidVerification)
	}

	// Rotate the acting token: the jti that performed this call is revoked
	// and a fresh one takes its place.
	token, jti, err := s.tokens.Sign(u.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RemoveTokenID(ctx, u.UserID, actingJTI); err != nil {
		return nil, err
	}
	if err := s.repo.AddTokenID(ctx, u.UserID, jti); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"verified":                true,
		"verification_token":      nil,
		"verification_expires_at": nil,
	}
	u.Verified = true
	if u.PendingEmail != nil {
		// The staged address was just confirmed: promote it.
		updates["email"] = *u.PendingEmail
		updates["pending_email"] = nil
		updates["pending_email_verified"] = true
		u.Email = *u.PendingEmail
		u.PendingEmail = nil
		u.PendingEmailVerified = true
	}
	if err := s.repo.Update(ctx, u.UserID, updates); err != nil {
		return nil, err
	}
	return &Result{Token: token, User: u}, nil
}

func (s *service) ResendVerification(ctx context.Context, u *domain.User) error {
	if u.Verified {
		return fmt.Errorf("resend: %w", domain.ErrAlreadyVerified)
	}
	if u.VerificationRequestedAt != nil && u.VerificationRequestedAt.After(time.Now().Add(-s.resendCooldown)) {
		return fmt.Errorf("resend: %w", domain.ErrRateLimited)
	}

	code, err := otp.Generate()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if err := s.repo.Update(ctx, u.UserID, map[string]interface{}{
		"verification_token":        otp.Digest(code),
		"verification_requested_at": now,
		"verification_expires_at":   now.Add(s.codeExpiry),
	}); err != nil {
		return err
	}

	if err := s.mailer.SendVerificationEmail(u.Email, code); err != nil {
		slog.Warn("failed to send verification email", "user_id", u.UserID, "err", err)
	}
	return nil
}
