package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lumacart/lumacart/internal/auth/domain"
)

type rememberTokensRepo struct {
	db dbtx
}

func (r *rememberTokensRepo) CreateRememberToken(ctx context.Context, t domain.RememberToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO remember_tokens (id, user_id, token_hash, device_id, expires_at, consumed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.TokenHash, t.DeviceID, t.ExpiresAt, t.Consumed, t.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *rememberTokensRepo) GetActiveRememberTokenByHash(ctx context.Context, hash string) (domain.RememberToken, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, token_hash, device_id, expires_at, consumed, created_at
		FROM remember_tokens
		WHERE token_hash = ? AND consumed = 0 AND expires_at > ?`,
		hash, time.Now().UTC())

	var t domain.RememberToken
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.DeviceID, &t.ExpiresAt, &t.Consumed, &t.CreatedAt)
	if err != nil {
		return domain.RememberToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *rememberTokensRepo) ConsumeRememberToken(ctx context.Context, tokenID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE remember_tokens SET consumed = 1 WHERE id = ? AND consumed = 0`, tokenID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *rememberTokensRepo) RevokeUserRememberTokens(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE remember_tokens SET consumed = 1 WHERE user_id = ? AND consumed = 0`, userID)
	return err
}

func (r *rememberTokensRepo) DeleteExpiredRememberTokens(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM remember_tokens WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
