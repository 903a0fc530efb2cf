package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"tripmate/internal/domain"
)

const insertPackageSQL = `
INSERT INTO packages
  (agency_id, name, description, price, duration_days, highlights, itinerary, policy, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updatePackageSQL = `
UPDATE packages
SET name=?, description=?, price=?, duration_days=?, highlights=?, itinerary=?, policy=?, updated_at=CURRENT_TIMESTAMP
WHERE id=?
`

const selectPackageCols = `
SELECT id, agency_id, name, description, price, duration_days, highlights, itinerary, policy, created_at, updated_at
FROM packages
`

func policyJSON(p *domain.PackagePolicy) any {
	if p == nil {
		return nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil
	}
	return string(b)
}

func (r *Repo) CreatePackage(ctx context.Context, p *domain.TravelPackage) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertPackageSQL,
		p.AgencyID, p.Name, valStr(p.Description), p.Price, p.DurationDays,
		mustJSON(p.Highlights), mustJSON(p.Itinerary), policyJSON(p.Policy), now, now)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	p.CreatedAt, p.UpdatedAt = now, now
	return err
}

func (r *Repo) UpdatePackage(ctx context.Context, p *domain.TravelPackage) error {
	res, err := r.db.ExecContext(ctx, updatePackageSQL,
		p.Name, valStr(p.Description), p.Price, p.DurationDays,
		mustJSON(p.Highlights), mustJSON(p.Itinerary), policyJSON(p.Policy), p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM packages WHERE id=?`, p.ID).Scan(&exists); err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *Repo) DeletePackage(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPackage(scan func(dest ...any) error) (domain.TravelPackage, error) {
	var p domain.TravelPackage
	var desc sql.NullString
	var highlights, itinerary []byte
	var policy sql.NullString
	if err := scan(&p.ID, &p.AgencyID, &p.Name, &desc, &p.Price, &p.DurationDays,
		&highlights, &itinerary, &policy, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.TravelPackage{}, err
	}
	p.Description = strPtr(desc)
	_ = json.Unmarshal(highlights, &p.Highlights)
	_ = json.Unmarshal(itinerary, &p.Itinerary)
	if policy.Valid && policy.String != "" {
		var pol domain.PackagePolicy
		if err := json.Unmarshal([]byte(policy.String), &pol); err == nil {
			p.Policy = &pol
		}
	}
	return p, nil
}

func (r *Repo) GetPackage(ctx context.Context, id int64) (domain.TravelPackage, error) {
	row := r.db.QueryRowContext(ctx, selectPackageCols+`WHERE id=?`, id)
	p, err := scanPackage(row.Scan)
	if err == sql.ErrNoRows {
		return domain.TravelPackage{}, domain.ErrNotFound
	}
	return p, err
}

func (r *Repo) ListPackages(ctx context.Context, q domain.PackagesQuery) ([]domain.TravelPackage, error) {
	query := selectPackageCols
	args := []any{}
	if q.Q != nil {
		query += `WHERE name LIKE ? `
		args = append(args, "%"+*q.Q+"%")
	}
	query += `ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, q.Limit)
	return r.queryPackages(ctx, query, args...)
}

func (r *Repo) ListPackagesForAgency(ctx context.Context, agencyID int64) ([]domain.TravelPackage, error) {
	return r.queryPackages(ctx, selectPackageCols+`WHERE agency_id=? ORDER BY created_at DESC, id DESC`, agencyID)
}

func (r *Repo) queryPackages(ctx context.Context, query string, args ...any) ([]domain.TravelPackage, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TravelPackage
	for rows.Next() {
		p, err := scanPackage(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
