package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lumacart/lumacart/internal/auth/domain"
)

type deletionRequestsRepo struct {
	db dbtx
}

func (r *deletionRequestsRepo) CreateDeletionRequest(ctx context.Context, req domain.AccountDeletionRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO account_deletion_requests (id, user_id, token_hash, reason, status, requested_at, confirmed_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.UserID, req.TokenHash, req.Reason, string(req.Status),
		req.RequestedAt, mapOptionalTime(req.ConfirmedAt), req.ExpiresAt,
	)
	return mapConstraint(err)
}

func (r *deletionRequestsRepo) GetPendingByTokenHash(ctx context.Context, hash string) (domain.AccountDeletionRequest, error) {
	row := r.db.QueryRowContext(ctx, deletionSelect+
		` WHERE token_hash = ? AND status = ? AND expires_at > ?`,
		hash, string(domain.DeletionPending), time.Now().UTC())
	return scanDeletionRequest(row)
}

func (r *deletionRequestsRepo) GetPendingByUserID(ctx context.Context, userID string) (domain.AccountDeletionRequest, error) {
	row := r.db.QueryRowContext(ctx, deletionSelect+
		` WHERE user_id = ? AND status = ? AND expires_at > ?
		ORDER BY requested_at DESC LIMIT 1`,
		userID, string(domain.DeletionPending), time.Now().UTC())
	return scanDeletionRequest(row)
}

func (r *deletionRequestsRepo) UpdateStatus(ctx context.Context, requestID string, status domain.DeletionStatus, confirmedAt *time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE account_deletion_requests SET status = ?, confirmed_at = COALESCE(?, confirmed_at) WHERE id = ?`,
		string(status), mapOptionalTime(confirmedAt), requestID)
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

func (r *deletionRequestsRepo) ExpirePendingRequests(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE account_deletion_requests SET status = ? WHERE status = ? AND expires_at <= ?`,
		string(domain.DeletionExpired), string(domain.DeletionPending), now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deletionSelect = `
	SELECT id, user_id, token_hash, reason, status, requested_at, confirmed_at, expires_at
	FROM account_deletion_requests`

func scanDeletionRequest(row *sql.Row) (domain.AccountDeletionRequest, error) {
	var (
		req         domain.AccountDeletionRequest
		status      string
		confirmedAt sql.NullTime
	)
	err := row.Scan(&req.ID, &req.UserID, &req.TokenHash, &req.Reason, &status,
		&req.RequestedAt, &confirmedAt, &req.ExpiresAt)
	if err != nil {
		return domain.AccountDeletionRequest{}, mapNotFound(err)
	}
	req.Status = domain.DeletionStatus(status)
	req.ConfirmedAt = mapNullTimePtr(confirmedAt)
	return req, nil
}
