package sqlite

import (
	"database/sql"

	"github.com/lumacart/lumacart/internal/auth/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Users() store.Users                   { return &usersRepo{db: t.tx} }
func (t *txStore) Sessions() store.Sessions             { return &sessionsRepo{db: t.tx} }
func (t *txStore) RememberTokens() store.RememberTokens { return &rememberTokensRepo{db: t.tx} }
func (t *txStore) DeletionRequests() store.DeletionRequests {
	return &deletionRequestsRepo{db: t.tx}
}
