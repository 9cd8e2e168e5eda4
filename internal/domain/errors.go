package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking
// which internal condition actually failed.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password —
	// callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidResetToken covers an unknown email, a mismatched code and an
	// expired code in the password-reset flow.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrInvalidVerification covers a mismatched or expired verification code.
	ErrInvalidVerification = errors.New("invalid or expired verification code")

	// ErrAlreadyVerified is returned when a verified user re-runs verification.
	ErrAlreadyVerified = errors.New("already verified")

	// ErrInvalidAuth collapses every authentication failure (missing header,
	// bad signature, expired token, revoked jti, unknown user) into one signal.
	ErrInvalidAuth = errors.New("invalid authentication")

	// ErrRateLimited is returned when a verification code reissue arrives
	// inside the cooldown window.
	ErrRateLimited = errors.New("too many requests")

	// ErrBadRequest marks malformed or unvalidatable input.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is the store-level miss. Flows translate it into one of
	// the signals above before it reaches a client.
	ErrNotFound = errors.New("not found")
)
