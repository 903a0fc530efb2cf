package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	my "github.com/go-sql-driver/mysql"

	"tripmate/internal/domain"
)

// isDup reports a unique-key violation (MySQL error 1062).
func isDup(err error) bool {
	var me *my.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

const insertReviewSQL = `
INSERT INTO reviews (author_id, target_type, target_id, rating, comment, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

func (r *Repo) CreateReview(ctx context.Context, rv *domain.Review) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertReviewSQL,
		rv.AuthorID, string(rv.TargetType), rv.TargetID, rv.Rating, rv.Comment, now, now)
	if err != nil {
		if isDup(err) {
			return domain.ErrConflict
		}
		return err
	}
	rv.ID, err = res.LastInsertId()
	rv.CreatedAt, rv.UpdatedAt = now, now
	return err
}

func (r *Repo) GetReview(ctx context.Context, id int64) (domain.Review, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, author_id, target_type, target_id, rating, comment, created_at, updated_at
FROM reviews WHERE id=?`, id)
	var rv domain.Review
	var target string
	if err := row.Scan(&rv.ID, &rv.AuthorID, &target, &rv.TargetID, &rv.Rating,
		&rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Review{}, domain.ErrNotFound
		}
		return domain.Review{}, err
	}
	rv.TargetType = domain.ReviewTarget(target)
	return rv, nil
}

func (r *Repo) UpdateReview(ctx context.Context, id int64, rating int, comment string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE reviews SET rating=?, comment=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		rating, comment, id)
	return err
}

func (r *Repo) DeleteReview(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) ListReviews(ctx context.Context, target domain.ReviewTarget, targetID int64, limit int) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT r.id, r.author_id, COALESCE(u.name, ''), r.target_type, r.target_id,
       r.rating, r.comment, r.created_at, r.updated_at
FROM reviews r
LEFT JOIN users u ON u.id = r.author_id
WHERE r.target_type=? AND r.target_id=?
ORDER BY r.created_at DESC, r.id DESC
LIMIT ?`, string(target), targetID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		var tt string
		if err := rows.Scan(&rv.ID, &rv.AuthorID, &rv.AuthorName, &tt, &rv.TargetID,
			&rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		rv.TargetType = domain.ReviewTarget(tt)
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) ReviewExists(ctx context.Context, authorID int64, target domain.ReviewTarget, targetID int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM reviews WHERE author_id=? AND target_type=? AND target_id=?`,
		authorID, string(target), targetID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repo) RatingSummary(ctx context.Context, target domain.ReviewTarget, targetID int64) (domain.RatingSummary, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE target_type=? AND target_id=?`,
		string(target), targetID)
	var sum domain.RatingSummary
	if err := row.Scan(&sum.Average, &sum.Count); err != nil {
		return domain.RatingSummary{}, err
	}
	return sum, nil
}
