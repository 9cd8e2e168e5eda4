package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-auth-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AuthEnvelope wraps the token-returning responses.
type AuthEnvelope struct {
	Success bool               `json:"success"`
	Token   string             `json:"token,omitempty"`
	User    *domain.PublicUser `json:"user,omitempty"`
	Error   string             `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Success: false, Error: msg})
}

// httpError maps domain sentinels to HTTP status codes. Anything unrecognised
// is an unexpected failure and surfaces as a 500.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidResetToken),
		errors.Is(err, domain.ErrInvalidVerification),
		errors.Is(err, domain.ErrInvalidAuth):
		writeError(w, http.StatusUnauthorized, unwrapped(err))
	case errors.Is(err, domain.ErrUserExists), errors.Is(err, domain.ErrAlreadyVerified):
		writeError(w, http.StatusConflict, unwrapped(err))
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, unwrapped(err))
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, unwrapped(err))
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// unwrapped returns the sentinel message without the flow prefix so the
// client sees a stable error string.
func unwrapped(err error) string {
	for _, sentinel := range []error{
		domain.ErrInvalidCredentials,
		domain.ErrUserExists,
		domain.ErrInvalidResetToken,
		domain.ErrInvalidVerification,
		domain.ErrAlreadyVerified,
		domain.ErrInvalidAuth,
		domain.ErrRateLimited,
		domain.ErrBadRequest,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
