package http

import (
	"net/http"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/lumacart/lumacart/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles credential login.
//
//	@Summary		Log in
//	@Description	Authenticates an email or phone identifier with a password and opens a session.
//	@Description	Set remember to also receive a single-use remember-me token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authclient.LoginRequest		true	"Credentials"
//	@Success		200		{object}	authclient.SessionResponse	"Token pair, user, optional remember token"
//	@Failure		401		{object}	authclient.ErrorResponse	"Invalid credentials or deactivated account"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authclient.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.AuthService.Login(r.Context(), req.Identifier, req.Password, req.Remember, deviceInfoFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSessionResponse(result))
}
