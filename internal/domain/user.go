package domain

import "time"

// User is the persisted user record. TokenIDs is the set of JWT token
// identifiers (jti) currently authorized for this user; a token whose jti is
// not in the set is revoked, regardless of its signature validity.
type User struct {
	UserID                  string     `json:"id" dynamodbav:"user_id"`
	FullName                string     `json:"fullName" dynamodbav:"full_name"`
	Email                   string     `json:"email" dynamodbav:"email"`
	PendingEmail            *string    `json:"pendingEmail,omitempty" dynamodbav:"pending_email"`
	PasswordHash            string     `json:"-" dynamodbav:"password_hash"`
	Verified                bool       `json:"verified" dynamodbav:"verified"`
	PendingEmailVerified    bool       `json:"pendingEmailVerified" dynamodbav:"pending_email_verified"`
	TokenIDs                []string   `json:"-" dynamodbav:"token_ids,stringset,omitempty"`
	ResetToken              *string    `json:"-" dynamodbav:"reset_token"`
	ResetRequestedAt        *time.Time `json:"-" dynamodbav:"reset_requested_at"`
	ResetExpiresAt          *time.Time `json:"-" dynamodbav:"reset_expires_at"`
	ResetRequestIP          *string    `json:"-" dynamodbav:"reset_request_ip"`
	VerificationToken       *string    `json:"-" dynamodbav:"verification_token"`
	VerificationRequestedAt *time.Time `json:"-" dynamodbav:"verification_requested_at"`
	VerificationExpiresAt   *time.Time `json:"-" dynamodbav:"verification_expires_at"`
	LastPasswordChangeAt    *time.Time `json:"-" dynamodbav:"last_password_change_at"`
	CreatedAt               time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt               time.Time  `json:"updated" dynamodbav:"updated_at"`
}

// HasTokenID reports whether jti is a member of the user's valid token set.
func (u *User) HasTokenID(jti string) bool {
	for _, id := range u.TokenIDs {
		if id == jti {
			return true
		}
	}
	return false
}

// PublicUser is the subset of a User record safe to return to clients.
type PublicUser struct {
	ID                   string  `json:"id"`
	FullName             string  `json:"fullName"`
	Email                string  `json:"email"`
	Verified             bool    `json:"verified"`
	PendingEmailVerified bool    `json:"pendingEmailVerified"`
	PendingEmail         *string `json:"pendingEmail"`
}

// Public returns the client-safe view of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:                   u.UserID,
		FullName:             u.FullName,
		Email:                u.Email,
		Verified:             u.Verified,
		PendingEmailVerified: u.PendingEmailVerified,
		PendingEmail:         u.PendingEmail,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type ResetRequestRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetVerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

type ResetConfirmRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type VerifyRequest struct {
	Token string `json:"token" validate:"required"`
}
