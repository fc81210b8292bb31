package http

import (
	"net/http"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/lumacart/lumacart/pkg/httpx"
)

type ChangePasswordHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles password change.
//
//	@Summary		Change password
//	@Description	Verifies the current password, stores the new one, and revokes every other
//	@Description	session and all remember-me tokens. The calling session stays signed in.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authclient.ChangePasswordRequest	true	"Current and new password"
//	@Success		200		{object}	authclient.MessageResponse			"Password changed"
//	@Failure		400		{object}	authclient.ErrorResponse			"New password does not meet requirements"
//	@Failure		401		{object}	authclient.ErrorResponse			"Current password is wrong"
//	@Router			/api/auth/change-password [post].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authclient.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	sessionID := httpx.SessionIDFromContext(ctx)
	if userID == "" || sessionID == "" {
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid token")
		return
	}

	if err := h.AuthService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword, sessionID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authclient.MessageResponse{Message: "password changed"})
}
