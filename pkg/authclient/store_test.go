package authclient

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestBoltStore(t *testing.T) *BoltStore {
	t.Helper()

	store, err := OpenBoltStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBoltStoreRoundTrip(t *testing.T) {
	store := newTestBoltStore(t)

	t.Run("empty store reports no session", func(t *testing.T) {
		_, err := store.Load()
		require.ErrorIs(t, err, ErrNoSavedSession)
	})

	data := AuthData{
		AccessToken:   "access-token",
		RefreshToken:  "refresh-token",
		RememberToken: "remember-token",
		DeviceID:      "device-1",
		User:          User{ID: "user-1", Email: "quinn@example.com"},
		ExpiresAt:     time.Now().Add(time.Hour).UTC(),
	}
	require.NoError(t, store.Save(data))

	t.Run("load returns what was saved", func(t *testing.T) {
		got, err := store.Load()
		require.NoError(t, err)
		require.Equal(t, data.AccessToken, got.AccessToken)
		require.Equal(t, data.RememberToken, got.RememberToken)
		require.Equal(t, data.User.ID, got.User.ID)
		require.WithinDuration(t, data.ExpiresAt, got.ExpiresAt, time.Second)
	})

	t.Run("save overwrites", func(t *testing.T) {
		data.AccessToken = "rotated"
		require.NoError(t, store.Save(data))

		got, err := store.Load()
		require.NoError(t, err)
		require.Equal(t, "rotated", got.AccessToken)
	})

	t.Run("clear empties the store", func(t *testing.T) {
		require.NoError(t, store.Clear())
		_, err := store.Load()
		require.ErrorIs(t, err, ErrNoSavedSession)

		// clearing twice is fine
		require.NoError(t, store.Clear())
	})
}
