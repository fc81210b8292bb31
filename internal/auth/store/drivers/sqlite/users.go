package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lumacart/lumacart/internal/auth/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, phone, password_hash, first_name, last_name, role, is_active,
email_verified_at, phone_verified_at, verification_secret, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) GetUserByPhone(ctx context.Context, phone string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE phone = ?`, phone)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, phone, password_hash, first_name, last_name, role, is_active,
			email_verified_at, phone_verified_at, verification_secret, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		mapStringNull(u.Email),
		mapStringNull(u.Phone),
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		string(u.Role),
		u.IsActive,
		mapOptionalTime(u.EmailVerifiedAt),
		mapOptionalTime(u.PhoneVerifiedAt),
		u.VerificationSecret,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	return r.exec(ctx, `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID)
}

func (r *usersRepo) SetActive(ctx context.Context, userID string, active bool) error {
	return r.exec(ctx, `UPDATE users SET is_active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), userID)
}

func (r *usersRepo) MarkEmailVerified(ctx context.Context, userID string, at time.Time) error {
	return r.exec(ctx, `UPDATE users SET email_verified_at = ?, updated_at = ? WHERE id = ?`,
		at, time.Now().UTC(), userID)
}

func (r *usersRepo) MarkPhoneVerified(ctx context.Context, userID string, at time.Time) error {
	return r.exec(ctx, `UPDATE users SET phone_verified_at = ?, updated_at = ? WHERE id = ?`,
		at, time.Now().UTC(), userID)
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return r.exec(ctx, `DELETE FROM users WHERE id = ?`, userID)
}

// exec runs a statement that must affect an existing row; zero rows maps to
// ErrNotFound so services can distinguish a miss from success.
func (r *usersRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
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

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u                      domain.User
		email, phone           sql.NullString
		role                   string
		emailVerified, phoneVf sql.NullTime
	)

	err := row.Scan(
		&u.ID, &email, &phone, &u.PasswordHash, &u.FirstName, &u.LastName,
		&role, &u.IsActive, &emailVerified, &phoneVf, &u.VerificationSecret,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Email = mapNullString(email)
	u.Phone = mapNullString(phone)
	u.Role = domain.Role(role)
	u.EmailVerifiedAt = mapNullTimePtr(emailVerified)
	u.PhoneVerifiedAt = mapNullTimePtr(phoneVf)
	return u, nil
}
