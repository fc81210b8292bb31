package http

import (
	"net/http"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/lumacart/lumacart/pkg/httpx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles new account registration.
//
//	@Summary		Register a new account
//	@Description	Creates a customer account from an email and/or phone identifier plus a password.
//	@Description	The account starts active with both identifiers unverified.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authclient.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	authclient.User				"The created account"
//	@Failure		400		{object}	authclient.ErrorResponse	"Missing identifier, weak password, or identifier already registered"
//	@Router			/api/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authclient.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.AuthService.Register(r.Context(), service.RegisterParams{
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUser(u.Summary()))
}
