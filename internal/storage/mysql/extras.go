package mysql

import (
	"context"
	"database/sql"
	"time"

	"tripmate/internal/domain"
)

// ---- recommendations ----

func (r *Repo) CreateRecommendation(ctx context.Context, rec *domain.Recommendation) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
INSERT INTO recommendations (user_id, name, country, description, image, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.UserID, rec.Name, rec.Country, valStr(rec.Description), valStr(rec.Image),
		string(rec.Status), now)
	if err != nil {
		return err
	}
	rec.ID, err = res.LastInsertId()
	rec.CreatedAt = now
	return err
}

const selectRecommendationCols = `
SELECT id, user_id, name, country, description, image, status, created_at
FROM recommendations
`

func scanRecommendation(scan func(dest ...any) error) (domain.Recommendation, error) {
	var rec domain.Recommendation
	var desc, image sql.NullString
	var status string
	if err := scan(&rec.ID, &rec.UserID, &rec.Name, &rec.Country, &desc, &image,
		&status, &rec.CreatedAt); err != nil {
		return domain.Recommendation{}, err
	}
	rec.Description = strPtr(desc)
	rec.Image = strPtr(image)
	rec.Status = domain.RecommendationStatus(status)
	return rec, nil
}

func (r *Repo) GetRecommendation(ctx context.Context, id int64) (domain.Recommendation, error) {
	row := r.db.QueryRowContext(ctx, selectRecommendationCols+`WHERE id=?`, id)
	rec, err := scanRecommendation(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Recommendation{}, domain.ErrNotFound
	}
	return rec, err
}

func (r *Repo) UpdateRecommendationStatus(ctx context.Context, id int64, status domain.RecommendationStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE recommendations SET status=? WHERE id=?`, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) ListRecommendations(ctx context.Context) ([]domain.Recommendation, error) {
	return r.queryRecommendations(ctx, selectRecommendationCols+`ORDER BY created_at DESC, id DESC`)
}

func (r *Repo) ListRecommendationsForUser(ctx context.Context, userID int64) ([]domain.Recommendation, error) {
	return r.queryRecommendations(ctx, selectRecommendationCols+`WHERE user_id=? ORDER BY created_at DESC, id DESC`, userID)
}

func (r *Repo) queryRecommendations(ctx context.Context, query string, args ...any) ([]domain.Recommendation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Recommendation
	for rows.Next() {
		rec, err := scanRecommendation(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ---- journeys ----

func (r *Repo) CreateJourney(ctx context.Context, j *domain.Journey) error {
	now := time.Now().UTC()
	var start any
	if j.StartDate != nil {
		start = j.StartDate.UTC().Format("2006-01-02")
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO journeys (user_id, destination, start_date, notes, created_at)
VALUES (?, ?, ?, ?, ?)`, j.UserID, j.Destination, start, valStr(j.Notes), now)
	if err != nil {
		return err
	}
	j.ID, err = res.LastInsertId()
	j.CreatedAt = now
	return err
}

func scanJourney(scan func(dest ...any) error) (domain.Journey, error) {
	var j domain.Journey
	var start sql.NullTime
	var notes sql.NullString
	if err := scan(&j.ID, &j.UserID, &j.Destination, &start, &notes, &j.CreatedAt); err != nil {
		return domain.Journey{}, err
	}
	if start.Valid {
		t := start.Time
		j.StartDate = &t
	}
	j.Notes = strPtr(notes)
	return j, nil
}

func (r *Repo) GetJourney(ctx context.Context, id int64) (domain.Journey, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, destination, start_date, notes, created_at FROM journeys WHERE id=?`, id)
	j, err := scanJourney(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Journey{}, domain.ErrNotFound
	}
	return j, err
}

func (r *Repo) UpdateJourney(ctx context.Context, j *domain.Journey) error {
	var start any
	if j.StartDate != nil {
		start = j.StartDate.UTC().Format("2006-01-02")
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE journeys SET destination=?, start_date=?, notes=? WHERE id=?`,
		j.Destination, start, valStr(j.Notes), j.ID)
	return err
}

func (r *Repo) DeleteJourney(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM journeys WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) ListJourneysForUser(ctx context.Context, userID int64) ([]domain.Journey, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, destination, start_date, notes, created_at
		 FROM journeys WHERE user_id=? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Journey
	for rows.Next() {
		j, err := scanJourney(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// ---- notes ----

func (r *Repo) CreateNote(ctx context.Context, n *domain.Note) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
INSERT INTO notes (user_id, title, content, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`, n.UserID, n.Title, n.Content, now, now)
	if err != nil {
		return err
	}
	n.ID, err = res.LastInsertId()
	n.CreatedAt, n.UpdatedAt = now, now
	return err
}

func (r *Repo) GetNote(ctx context.Context, id int64) (domain.Note, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, content, created_at, updated_at FROM notes WHERE id=?`, id)
	var n domain.Note
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Note{}, domain.ErrNotFound
		}
		return domain.Note{}, err
	}
	return n, nil
}

func (r *Repo) UpdateNote(ctx context.Context, n *domain.Note) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notes SET title=?, content=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		n.Title, n.Content, n.ID)
	return err
}

func (r *Repo) DeleteNote(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) ListNotesForUser(ctx context.Context, userID int64) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, content, created_at, updated_at
		 FROM notes WHERE user_id=? ORDER BY updated_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// ---- saved places ----

func (r *Repo) CreateSavedPlace(ctx context.Context, sp *domain.SavedPlace) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
INSERT INTO saved_places (user_id, place_id, created_at) VALUES (?, ?, ?)`,
		sp.UserID, sp.PlaceID, now)
	if err != nil {
		if isDup(err) {
			return domain.ErrConflict
		}
		return err
	}
	sp.ID, err = res.LastInsertId()
	sp.CreatedAt = now
	return err
}

func (r *Repo) GetSavedPlace(ctx context.Context, id int64) (domain.SavedPlace, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT s.id, s.user_id, s.place_id, COALESCE(p.name, ''), s.created_at
FROM saved_places s
LEFT JOIN places p ON p.id = s.place_id
WHERE s.id=?`, id)
	var sp domain.SavedPlace
	if err := row.Scan(&sp.ID, &sp.UserID, &sp.PlaceID, &sp.PlaceName, &sp.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.SavedPlace{}, domain.ErrNotFound
		}
		return domain.SavedPlace{}, err
	}
	return sp, nil
}

func (r *Repo) DeleteSavedPlace(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_places WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) SavedPlaceExists(ctx context.Context, userID, placeID int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM saved_places WHERE user_id=? AND place_id=?`, userID, placeID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repo) ListSavedPlacesForUser(ctx context.Context, userID int64) ([]domain.SavedPlace, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT s.id, s.user_id, s.place_id, COALESCE(p.name, ''), s.created_at
FROM saved_places s
LEFT JOIN places p ON p.id = s.place_id
WHERE s.user_id=? ORDER BY s.created_at DESC, s.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.SavedPlace
	for rows.Next() {
		var sp domain.SavedPlace
		if err := rows.Scan(&sp.ID, &sp.UserID, &sp.PlaceID, &sp.PlaceName, &sp.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

// ---- blogs ----

func (r *Repo) CreateBlog(ctx context.Context, b *domain.Blog) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
INSERT INTO blogs (author_id, title, content, cover_image, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`, b.AuthorID, b.Title, b.Content, valStr(b.CoverImage), now, now)
	if err != nil {
		return err
	}
	b.ID, err = res.LastInsertId()
	b.CreatedAt, b.UpdatedAt = now, now
	return err
}

const selectBlogCols = `
SELECT b.id, b.author_id, COALESCE(u.name, ''), b.title, b.content, b.cover_image, b.created_at, b.updated_at
FROM blogs b
LEFT JOIN users u ON u.id = b.author_id
`

func scanBlog(scan func(dest ...any) error) (domain.Blog, error) {
	var b domain.Blog
	var cover sql.NullString
	if err := scan(&b.ID, &b.AuthorID, &b.AuthorName, &b.Title, &b.Content, &cover,
		&b.CreatedAt, &b.UpdatedAt); err != nil {
		return domain.Blog{}, err
	}
	b.CoverImage = strPtr(cover)
	return b, nil
}

func (r *Repo) GetBlog(ctx context.Context, id int64) (domain.Blog, error) {
	row := r.db.QueryRowContext(ctx, selectBlogCols+`WHERE b.id=?`, id)
	b, err := scanBlog(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Blog{}, domain.ErrNotFound
	}
	return b, err
}

func (r *Repo) UpdateBlog(ctx context.Context, b *domain.Blog) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE blogs SET title=?, content=?, cover_image=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		b.Title, b.Content, valStr(b.CoverImage), b.ID)
	return err
}

func (r *Repo) DeleteBlog(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) ListBlogs(ctx context.Context, limit int) ([]domain.Blog, error) {
	rows, err := r.db.QueryContext(ctx, selectBlogCols+`ORDER BY b.created_at DESC, b.id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Blog
	for rows.Next() {
		b, err := scanBlog(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
