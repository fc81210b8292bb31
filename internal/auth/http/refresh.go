package http

import (
	"net/http"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/lumacart/lumacart/pkg/httpx"
)

type RefreshHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles refresh token rotation.
//
//	@Summary		Refresh tokens
//	@Description	Exchanges a refresh token for a new pair. The presented token's session is
//	@Description	revoked in the same step, so a refresh token only ever works once.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authclient.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	authclient.TokenPair		"New token pair"
//	@Failure		401		{object}	authclient.ErrorResponse	"Invalid, expired or already-used refresh token"
//	@Router			/api/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authclient.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pair, err := h.AuthService.Refresh(r.Context(), req.RefreshToken, deviceInfoFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTokenPair(pair))
}
