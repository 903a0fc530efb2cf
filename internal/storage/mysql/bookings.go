package mysql

import (
	"context"
	"database/sql"
	"time"

	"tripmate/internal/domain"
)

const insertBookingSQL = `
INSERT INTO bookings
  (user_id, package_id, travellers, travel_date, total_price, address, phone, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// listBookingsSQL LEFT JOINs the package so a deleted package still
// yields the booking row, with NULL snapshot columns.
const listBookingsSQL = `
SELECT
  b.id, b.user_id, b.package_id, b.travellers, b.travel_date, b.total_price,
  b.address, b.phone, b.status, b.created_at, b.updated_at,
  p.id, p.name, p.duration_days, p.price
FROM bookings b
LEFT JOIN packages p ON p.id = b.package_id
`

func (r *Repo) CreateBooking(ctx context.Context, b *domain.Booking) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.UserID, b.PackageID, b.Travellers, b.TravelDate.UTC().Format("2006-01-02"),
		b.TotalPrice, b.Address, b.Phone, string(b.Status), now, now,
	)
	if err != nil {
		return err
	}
	b.ID, err = res.LastInsertId()
	b.CreatedAt, b.UpdatedAt = now, now
	return err
}

func (r *Repo) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, package_id, travellers, travel_date, total_price,
       address, phone, status, created_at, updated_at
FROM bookings WHERE id=?`, id)
	var b domain.Booking
	var status string
	if err := row.Scan(&b.ID, &b.UserID, &b.PackageID, &b.Travellers, &b.TravelDate,
		&b.TotalPrice, &b.Address, &b.Phone, &status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}
	b.Status = domain.BookingStatus(status)
	return b, nil
}

func (r *Repo) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// status may equal the previous value; distinguish via existence
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM bookings WHERE id=?`, id).Scan(&exists); err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *Repo) DeleteBooking(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) ListBookingsForUser(ctx context.Context, userID int64) ([]domain.BookingView, error) {
	return r.listBookings(ctx, listBookingsSQL+` WHERE b.user_id=? ORDER BY b.created_at DESC, b.id DESC`, userID)
}

func (r *Repo) ListBookingsForAgency(ctx context.Context, agencyID int64) ([]domain.BookingView, error) {
	return r.listBookings(ctx, listBookingsSQL+` WHERE p.agency_id=? ORDER BY b.created_at DESC, b.id DESC`, agencyID)
}

func (r *Repo) listBookings(ctx context.Context, query string, arg int64) ([]domain.BookingView, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BookingView
	for rows.Next() {
		var bv domain.BookingView
		var status string
		var pkgID sql.NullInt64
		var pkgName sql.NullString
		var pkgDays sql.NullInt64
		var pkgPrice sql.NullFloat64
		if err := rows.Scan(
			&bv.ID, &bv.UserID, &bv.PackageID, &bv.Travellers, &bv.TravelDate, &bv.TotalPrice,
			&bv.Address, &bv.Phone, &status, &bv.CreatedAt, &bv.UpdatedAt,
			&pkgID, &pkgName, &pkgDays, &pkgPrice,
		); err != nil {
			return nil, err
		}
		bv.Status = domain.BookingStatus(status)
		if pkgID.Valid {
			bv.Package = &domain.PackageSnapshot{
				ID:           pkgID.Int64,
				Name:         pkgName.String,
				DurationDays: int(pkgDays.Int64),
				Price:        pkgPrice.Float64,
			}
		} else {
			bv.PackageDeleted = true
		}
		out = append(out, bv)
	}
	return out, rows.Err()
}
