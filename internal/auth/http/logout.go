package http

import (
	"net/http"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/lumacart/lumacart/pkg/httpx"
)

type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles logout.
//
//	@Summary		Log out
//	@Description	Revokes the session the access token belongs to. The access token keeps
//	@Description	verifying until it expires, but its refresh token is dead immediately.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authclient.MessageResponse	"Logged out"
//	@Failure		401	{object}	authclient.ErrorResponse	"Invalid or missing access token"
//	@Router			/api/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := httpx.SessionIDFromContext(ctx)
	if sessionID == "" {
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid token")
		return
	}

	if err := h.AuthService.Logout(ctx, sessionID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authclient.MessageResponse{Message: "logged out"})
}
