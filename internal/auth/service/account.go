package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/lumacart/lumacart/internal/auth/domain"
	"github.com/lumacart/lumacart/internal/auth/store"
	"github.com/lumacart/lumacart/pkg/cryptox"
	"github.com/lumacart/lumacart/pkg/idx"
	"github.com/lumacart/lumacart/pkg/slogx"
)

var (
	ErrDeletionPending      = errors.New("deletion_already_pending")
	ErrNoDeletionPending    = errors.New("no_deletion_pending")
	ErrInvalidDeletionToken = errors.New("invalid_deletion_token")
)

// AccountService handles the account deletion workflow: a user requests
// deletion, receives a confirmation token, and the account is only removed
// once that token comes back. Unconfirmed requests lapse after DeletionTTL.
type AccountService struct {
	Store       store.Store
	DeletionTTL time.Duration
}

// DeletionRequestResult is what RequestDeletion hands back: the audit row
// and the opaque confirmation token (returned exactly once, only its
// fingerprint is stored).
type DeletionRequestResult struct {
	Request domain.AccountDeletionRequest
	Token   string
}

// RequestDeletion opens a pending deletion request for the user. Only one
// pending request may exist at a time.
func (s *AccountService) RequestDeletion(ctx context.Context, userID, reason string) (DeletionRequestResult, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	if _, err := s.Store.DeletionRequests().GetPendingByUserID(ctx, userID); err == nil {
		return DeletionRequestResult{}, ErrDeletionPending
	} else if !errors.Is(err, store.ErrNotFound) {
		return DeletionRequestResult{}, err
	}

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DeletionRequestResult{}, ErrUserNotFound
		}
		return DeletionRequestResult{}, err
	}

	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return DeletionRequestResult{}, err
	}

	req := domain.AccountDeletionRequest{
		ID:          idx.New().String(),
		UserID:      userID,
		TokenHash:   cryptox.FingerprintToken(opaque),
		Reason:      strings.TrimSpace(reason),
		Status:      domain.DeletionPending,
		RequestedAt: now,
		ExpiresAt:   now.Add(s.DeletionTTL),
	}
	if err := s.Store.DeletionRequests().CreateDeletionRequest(ctx, req); err != nil {
		return DeletionRequestResult{}, err
	}

	l.Info("account deletion requested",
		slog.String("user_id", userID),
		slog.Time("expires_at", req.ExpiresAt),
	)
	return DeletionRequestResult{Request: req, Token: opaque}, nil
}

// ConfirmDeletion completes a pending request: the request is marked
// completed and the user row is removed in the same transaction. Sessions
// and remember tokens cascade with the user; the deletion request row stays
// behind as the audit record.
func (s *AccountService) ConfirmDeletion(ctx context.Context, token string) error {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	fp := cryptox.FingerprintToken(token)

	var userID string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		req, err := tx.DeletionRequests().GetPendingByTokenHash(ctx, fp)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidDeletionToken
			}
			return err
		}
		userID = req.UserID

		if err := tx.DeletionRequests().UpdateStatus(ctx, req.ID, domain.DeletionCompleted, &now); err != nil {
			return err
		}

		if err := tx.Users().DeleteUser(ctx, req.UserID); err != nil {
			// The user may already be gone; the audit transition still stands.
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.Info("account deleted", slog.String("user_id", userID))
	return nil
}

// CancelDeletion withdraws the user's pending request.
func (s *AccountService) CancelDeletion(ctx context.Context, userID string) error {
	l := slogx.FromContext(ctx)

	req, err := s.Store.DeletionRequests().GetPendingByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoDeletionPending
		}
		return err
	}

	if err := s.Store.DeletionRequests().UpdateStatus(ctx, req.ID, domain.DeletionCancelled, nil); err != nil {
		return err
	}

	l.Info("account deletion cancelled", slog.String("user_id", userID))
	return nil
}

// PendingDeletion returns the user's open request, if any.
func (s *AccountService) PendingDeletion(ctx context.Context, userID string) (domain.AccountDeletionRequest, error) {
	req, err := s.Store.DeletionRequests().GetPendingByUserID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.AccountDeletionRequest{}, ErrNoDeletionPending
	}
	return req, err
}
