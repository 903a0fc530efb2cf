package mysql

import (
	"context"
	"database/sql"
	"time"

	"tripmate/internal/domain"
)

const insertUserSQL = `
INSERT INTO users (email, name, role, status, created_at)
VALUES (?, ?, ?, ?, ?)
`

func (r *Repo) CreateUser(ctx context.Context, u *domain.User) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.Email, u.Name, string(u.Role), string(u.Status), now)
	if err != nil {
		return err
	}
	u.ID, err = res.LastInsertId()
	u.CreatedAt = now
	return err
}

func (r *Repo) GetUser(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, name, role, status, created_at FROM users WHERE id=?`, id)
	var u domain.User
	var role, status string
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &role, &status, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	u.Status = domain.UserStatus(status)
	return u, nil
}
