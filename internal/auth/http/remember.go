package http

import (
	"net/http"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/lumacart/lumacart/pkg/httpx"
)

type RememberHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles remember-me session restore.
//
//	@Summary		Restore a session
//	@Description	Exchanges a remember-me token for a fresh session. The token is single-use;
//	@Description	the response carries its replacement.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authclient.RememberRequest	true	"Remember-me token"
//	@Success		200		{object}	authclient.SessionResponse	"Token pair, user, replacement remember token"
//	@Failure		401		{object}	authclient.ErrorResponse	"Invalid, expired or already-used remember token, or deactivated account"
//	@Router			/api/auth/remember [post].
func (h *RememberHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authclient.RememberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.AuthService.RestoreSession(r.Context(), req.RememberToken, deviceInfoFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSessionResponse(result))
}
