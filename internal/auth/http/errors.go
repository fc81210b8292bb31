package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/pkg/httpx"
	"github.com/lumacart/lumacart/pkg/slogx"
)

// writeServiceError maps service sentinel errors onto the uniform error
// envelope. Anything unmapped is a 500 with a generic message; details go to
// the log, never to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrAccountDisabled):
		// Deactivated accounts get the same answer as bad credentials so a
		// correct password guess does not confirm the account exists.
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrDuplicateIdentifier):
		httpx.WriteError(w, r, http.StatusBadRequest, "email or phone already registered")
	case errors.Is(err, service.ErrMissingIdentifier):
		httpx.WriteError(w, r, http.StatusBadRequest, "email or phone is required")
	case errors.Is(err, service.ErrWeakPassword):
		httpx.WriteError(w, r, http.StatusBadRequest, "password does not meet requirements")
	case errors.Is(err, service.ErrInvalidRefresh):
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid refresh token")
	case errors.Is(err, service.ErrInvalidRemember):
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid remember token")
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, r, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrDeletionPending):
		httpx.WriteError(w, r, http.StatusConflict, "a deletion request is already pending")
	case errors.Is(err, service.ErrNoDeletionPending):
		httpx.WriteError(w, r, http.StatusNotFound, "no pending deletion request")
	case errors.Is(err, service.ErrInvalidDeletionToken):
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid or expired confirmation token")
	case errors.Is(err, service.ErrInvalidCode):
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid verification code")
	case errors.Is(err, service.ErrInvalidChannel):
		httpx.WriteError(w, r, http.StatusBadRequest, "unknown verification channel")
	case errors.Is(err, service.ErrNoIdentifier):
		httpx.WriteError(w, r, http.StatusBadRequest, "account has no identifier for that channel")
	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
		httpx.WriteError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON parses the request body into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
