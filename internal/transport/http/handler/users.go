package handler

import (
	"net/http"

	"github.com/go-auth-api/internal/domain"
	"github.com/go-auth-api/internal/transport/http/middleware"
)

// UserHandler handles user-facing read endpoints.
type UserHandler struct{}

func NewUserHandler() *UserHandler { return &UserHandler{} }

// Me returns the public view of the authenticated user.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, domain.ErrInvalidAuth.Error())
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Success bool               `json:"success"`
		User    *domain.PublicUser `json:"user"`
	}{Success: true, User: u.Public()})
}
