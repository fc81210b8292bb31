package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lumacart/lumacart/internal/auth/domain"
)

type sessionsRepo struct {
	db dbtx
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, token_hash, device_id, user_agent, ip,
			expires_at, revoked, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.TokenHash, s.DeviceID, s.UserAgent, s.IP,
		s.ExpiresAt, s.Revoked, s.CreatedAt, s.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, token_hash, device_id, user_agent, ip,
			expires_at, revoked, created_at, updated_at
		FROM sessions WHERE token_hash = ?`, hash)

	var s domain.Session
	err := row.Scan(
		&s.ID, &s.UserID, &s.TokenHash, &s.DeviceID, &s.UserAgent, &s.IP,
		&s.ExpiresAt, &s.Revoked, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) RevokeSession(ctx context.Context, sessionID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET revoked = 1, updated_at = ? WHERE id = ? AND revoked = 0`,
		time.Now().UTC(), sessionID)
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

func (r *sessionsRepo) RevokeUserSessions(ctx context.Context, userID string, exceptSessionID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET revoked = 1, updated_at = ? WHERE user_id = ? AND id != ? AND revoked = 0`,
		time.Now().UTC(), userID, exceptSessionID)
	return err
}

func (r *sessionsRepo) CountActiveSessions(ctx context.Context, userID string) (int, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions WHERE user_id = ? AND revoked = 0 AND expires_at > ?`,
		userID, time.Now().UTC())

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
