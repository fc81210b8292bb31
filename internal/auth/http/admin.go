package http

import (
	"net/http"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/lumacart/lumacart/pkg/httpx"
)

type AdminHandler struct {
	UserService *service.UserService
}

// HandleSetActive enables or disables an account.
//
//	@Summary		Set account active flag
//	@Description	Enables or disables a user account. Disabling revokes every session and
//	@Description	remember token immediately. Requires the ADMIN role.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User id"
//	@Param			request	body		authclient.SetActiveRequest	true	"Desired active state"
//	@Success		200		{object}	authclient.MessageResponse	"Flag updated"
//	@Failure		403		{object}	authclient.ErrorResponse	"Caller is not an admin"
//	@Failure		404		{object}	authclient.ErrorResponse	"User not found"
//	@Router			/api/admin/users/{id}/active [patch].
func (h *AdminHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("id")
	if userID == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, "missing user id")
		return
	}

	var req authclient.SetActiveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.UserService.SetUserActive(ctx, userID, req.Active); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authclient.MessageResponse{Message: "account updated"})
}
