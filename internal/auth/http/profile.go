package http

import (
	"net/http"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/pkg/httpx"
	"github.com/lumacart/lumacart/pkg/slogx"
)

type ProfileHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles the profile endpoint.
//
//	@Summary		Get profile
//	@Description	Returns the authenticated user's account details.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authclient.User				"The account"
//	@Failure		401	{object}	authclient.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	authclient.ErrorResponse	"Account no longer exists"
//	@Router			/api/auth/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid token")
		return
	}

	u, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load profile", "user_id", userID, "err", err)
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(u.Summary()))
}
