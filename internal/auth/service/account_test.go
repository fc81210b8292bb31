package service

import (
	"context"
	"testing"
	"time"

	"github.com/lumacart/lumacart/internal/auth/domain"
	"github.com/lumacart/lumacart/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestAccountDeletionWorkflow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	authSvc := newTestAuthService(t, st)
	svc := &AccountService{Store: st, DeletionTTL: 24 * time.Hour}

	u := registerTestUser(t, authSvc, "judy@example.com")

	result, err := svc.RequestDeletion(ctx, u.ID, "switching providers")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, domain.DeletionPending, result.Request.Status)
	require.Equal(t, "switching providers", result.Request.Reason)

	t.Run("second request while pending is rejected", func(t *testing.T) {
		_, err := svc.RequestDeletion(ctx, u.ID, "")
		require.ErrorIs(t, err, ErrDeletionPending)
	})

	t.Run("pending request is queryable", func(t *testing.T) {
		req, err := svc.PendingDeletion(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, result.Request.ID, req.ID)
	})

	t.Run("bad confirmation token rejected", func(t *testing.T) {
		require.ErrorIs(t, svc.ConfirmDeletion(ctx, "wrong-token"), ErrInvalidDeletionToken)
	})

	require.NoError(t, svc.ConfirmDeletion(ctx, result.Token))

	t.Run("user is gone after confirmation", func(t *testing.T) {
		userSvc := &UserService{Store: st}
		_, err := userSvc.GetUserByID(ctx, u.ID)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("token cannot confirm twice", func(t *testing.T) {
		require.ErrorIs(t, svc.ConfirmDeletion(ctx, result.Token), ErrInvalidDeletionToken)
	})
}

func TestAccountDeletionCancel(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	authSvc := newTestAuthService(t, st)
	svc := &AccountService{Store: st, DeletionTTL: 24 * time.Hour}

	u := registerTestUser(t, authSvc, "karl@example.com")

	t.Run("cancel without pending request", func(t *testing.T) {
		require.ErrorIs(t, svc.CancelDeletion(ctx, u.ID), ErrNoDeletionPending)
	})

	result, err := svc.RequestDeletion(ctx, u.ID, "")
	require.NoError(t, err)

	require.NoError(t, svc.CancelDeletion(ctx, u.ID))

	t.Run("cancelled token no longer confirms", func(t *testing.T) {
		require.ErrorIs(t, svc.ConfirmDeletion(ctx, result.Token), ErrInvalidDeletionToken)
	})

	t.Run("user survives cancellation", func(t *testing.T) {
		userSvc := &UserService{Store: st}
		got, err := userSvc.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("a fresh request can be opened after cancelling", func(t *testing.T) {
		_, err := svc.RequestDeletion(ctx, u.ID, "second thoughts")
		require.NoError(t, err)
	})
}

func TestDeletionCascadesSessions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	authSvc := newTestAuthService(t, st)
	svc := &AccountService{Store: st, DeletionTTL: 24 * time.Hour}

	u := registerTestUser(t, authSvc, "laura@example.com")

	login, err := authSvc.Login(ctx, "laura@example.com", "correct-horse", true, domain.DeviceInfo{})
	require.NoError(t, err)

	result, err := svc.RequestDeletion(ctx, u.ID, "")
	require.NoError(t, err)
	require.NoError(t, svc.ConfirmDeletion(ctx, result.Token))

	t.Run("refresh token is dead", func(t *testing.T) {
		_, err := authSvc.Refresh(ctx, login.Tokens.RefreshToken, domain.DeviceInfo{})
		require.ErrorIs(t, err, ErrInvalidRefresh)
	})

	t.Run("remember token is dead", func(t *testing.T) {
		_, err := authSvc.RestoreSession(ctx, login.RememberToken, domain.DeviceInfo{})
		require.ErrorIs(t, err, ErrInvalidRemember)
	})

	t.Run("still-valid access token claims survive but user lookup fails", func(t *testing.T) {
		claims, err := authSvc.Verifier.Verify(login.Tokens.AccessToken)
		require.NoError(t, err)
		require.NoError(t, claims.ValidateType(jwtx.TokenTypeAccess))

		userSvc := &UserService{Store: st}
		_, err = userSvc.GetUserByID(ctx, claims.Subject)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
