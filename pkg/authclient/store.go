package authclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// ErrNoSavedSession is returned when the token store holds nothing.
var ErrNoSavedSession = errors.New("authclient: no saved session")

// AuthData is the persisted client-side session state.
type AuthData struct {
	AccessToken   string    `json:"accessToken"`
	RefreshToken  string    `json:"refreshToken"`
	RememberToken string    `json:"rememberToken,omitempty"`
	DeviceID      string    `json:"deviceId"`
	User          User      `json:"user"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// TokenStore persists session state between process runs.
type TokenStore interface {
	Save(data AuthData) error
	Load() (AuthData, error)

	// Clear removes the saved session. Clearing an empty store is fine.
	Clear() error

	Close() error
}

var (
	bucketAuth = []byte("auth")
	authKey    = []byte("current")
)

// BoltStore is a TokenStore backed by a local bbolt file, suitable for CLI
// tools and desktop clients.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens (or creates) the token store file.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("authclient: open token store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketAuth)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("authclient: init token store: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Save(data AuthData) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buf, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("authclient: marshal session: %w", err)
		}
		return tx.Bucket(bucketAuth).Put(authKey, buf)
	})
}

func (s *BoltStore) Load() (AuthData, error) {
	var data AuthData

	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketAuth).Get(authKey)
		if raw == nil {
			return ErrNoSavedSession
		}
		return json.Unmarshal(raw, &data)
	})
	if err != nil {
		return AuthData{}, err
	}
	return data, nil
}

func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAuth).Delete(authKey)
	})
}

func (s *BoltStore) Close() error { return s.db.Close() }
