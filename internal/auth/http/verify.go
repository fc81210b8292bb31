package http

import (
	"net/http"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/lumacart/lumacart/pkg/httpx"
)

type VerificationHandler struct {
	VerificationService *service.VerificationService
}

// HandleRequest issues a verification code.
//
//	@Summary		Request verification code
//	@Description	Issues a six-digit code for the email or phone channel. Delivery happens
//	@Description	out-of-band; the code itself is never returned to the client.
//	@Tags			Verification
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authclient.VerificationRequest	true	"Channel to verify"
//	@Success		200		{object}	authclient.MessageResponse		"Code issued"
//	@Failure		400		{object}	authclient.ErrorResponse		"Unknown channel or no identifier for it"
//	@Failure		401		{object}	authclient.ErrorResponse		"Invalid or missing access token"
//	@Router			/api/auth/verify/request [post].
func (h *VerificationHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authclient.VerificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid token")
		return
	}

	// The code goes to the mail/SMS gateway, not into the response.
	if _, err := h.VerificationService.RequestCode(ctx, userID, req.Channel); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authclient.MessageResponse{Message: "verification code sent"})
}

// HandleConfirm validates a verification code.
//
//	@Summary		Confirm verification code
//	@Description	Validates a code and marks the channel's identifier as verified.
//	@Tags			Verification
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authclient.VerificationConfirmRequest	true	"Channel and code"
//	@Success		200		{object}	authclient.MessageResponse				"Identifier verified"
//	@Failure		401		{object}	authclient.ErrorResponse				"Invalid code or access token"
//	@Router			/api/auth/verify/confirm [post].
func (h *VerificationHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authclient.VerificationConfirmRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid token")
		return
	}

	if err := h.VerificationService.ConfirmCode(ctx, userID, req.Channel, req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authclient.MessageResponse{Message: "identifier verified"})
}
