package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lumacart/lumacart/internal/auth/domain"
	"github.com/lumacart/lumacart/internal/auth/store"
	"github.com/lumacart/lumacart/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// SetUserActive flips the account active flag. Deactivation also revokes
// every session and remember token so the account goes dark immediately
// instead of at access-token expiry.
func (s *UserService) SetUserActive(ctx context.Context, userID string, active bool) error {
	l := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().SetActive(ctx, userID, active); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if active {
			return nil
		}
		if err := tx.Sessions().RevokeUserSessions(ctx, userID, ""); err != nil {
			return err
		}
		return tx.RememberTokens().RevokeUserRememberTokens(ctx, userID)
	})
	if err != nil {
		return err
	}

	l.Info("account active flag updated",
		slog.String("user_id", userID),
		slog.Bool("active", active),
	)
	return nil
}
