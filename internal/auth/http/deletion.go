package http

import (
	"net/http"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/pkg/authclient"
	"github.com/lumacart/lumacart/pkg/httpx"
)

type DeletionHandler struct {
	AccountService *service.AccountService
}

// HandleRequest opens an account deletion request.
//
//	@Summary		Request account deletion
//	@Description	Opens a pending deletion request and returns the confirmation token. The
//	@Description	account is untouched until the token is submitted to the confirm endpoint;
//	@Description	unconfirmed requests lapse automatically.
//	@Tags			Account
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authclient.DeletionRequest	true	"Optional reason"
//	@Success		201		{object}	authclient.DeletionResponse	"Confirmation token and its expiry"
//	@Failure		401		{object}	authclient.ErrorResponse	"Invalid or missing access token"
//	@Failure		409		{object}	authclient.ErrorResponse	"A deletion request is already pending"
//	@Router			/api/account/deletion [post].
func (h *DeletionHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authclient.DeletionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid token")
		return
	}

	result, err := h.AccountService.RequestDeletion(ctx, userID, req.Reason)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authclient.DeletionResponse{
		ConfirmationToken: result.Token,
		ExpiresAt:         result.Request.ExpiresAt,
	})
}

// HandleGet reports the pending deletion request, if any.
//
//	@Summary		Get pending deletion request
//	@Description	Returns the expiry of the user's pending deletion request. The confirmation
//	@Description	token is only ever shown at creation time.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authclient.DeletionResponse	"Pending request expiry (token omitted)"
//	@Failure		404	{object}	authclient.ErrorResponse	"No pending deletion request"
//	@Router			/api/account/deletion [get].
func (h *DeletionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid token")
		return
	}

	req, err := h.AccountService.PendingDeletion(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authclient.DeletionResponse{ExpiresAt: req.ExpiresAt})
}

// HandleConfirm completes a pending deletion.
//
//	@Summary		Confirm account deletion
//	@Description	Submits a confirmation token and permanently removes the account. Works
//	@Description	without authentication so the token can be used after the session expired.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authclient.DeletionConfirmRequest	true	"Confirmation token"
//	@Success		200		{object}	authclient.MessageResponse			"Account deleted"
//	@Failure		401		{object}	authclient.ErrorResponse			"Invalid or expired confirmation token"
//	@Router			/api/account/deletion/confirm [post].
func (h *DeletionHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req authclient.DeletionConfirmRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.AccountService.ConfirmDeletion(r.Context(), req.Token); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authclient.MessageResponse{Message: "account deleted"})
}

// HandleCancel withdraws the pending deletion request.
//
//	@Summary		Cancel account deletion
//	@Description	Withdraws the user's pending deletion request.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authclient.MessageResponse	"Request cancelled"
//	@Failure		404	{object}	authclient.ErrorResponse	"No pending deletion request"
//	@Router			/api/account/deletion/cancel [post].
func (h *DeletionHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid token")
		return
	}

	if err := h.AccountService.CancelDeletion(ctx, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authclient.MessageResponse{Message: "deletion request cancelled"})
}
