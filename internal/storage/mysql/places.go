package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"tripmate/internal/domain"
)

const insertPlaceSQL = `
INSERT INTO places
  (name, country, city, description, cover_image, attractions, things_to_do, local_culture, cuisine, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updatePlaceSQL = `
UPDATE places
SET name=?, country=?, city=?, description=?, cover_image=?,
    attractions=?, things_to_do=?, local_culture=?, cuisine=?
WHERE id=?
`

const selectPlaceCols = `
SELECT id, name, country, city, description, cover_image,
       attractions, things_to_do, local_culture, cuisine, created_at
FROM places
`

func (r *Repo) CreatePlace(ctx context.Context, p *domain.Place) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertPlaceSQL,
		p.Name, p.Country, valStr(p.City), valStr(p.Description), valStr(p.CoverImage),
		mustJSON(p.Attractions), mustJSON(p.ThingsToDo), mustJSON(p.Culture), mustJSON(p.Cuisine), now)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	p.CreatedAt = now
	return err
}

func (r *Repo) UpdatePlace(ctx context.Context, p *domain.Place) error {
	res, err := r.db.ExecContext(ctx, updatePlaceSQL,
		p.Name, p.Country, valStr(p.City), valStr(p.Description), valStr(p.CoverImage),
		mustJSON(p.Attractions), mustJSON(p.ThingsToDo), mustJSON(p.Culture), mustJSON(p.Cuisine), p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM places WHERE id=?`, p.ID).Scan(&exists); err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *Repo) DeletePlace(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM places WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPlace(scan func(dest ...any) error) (domain.Place, error) {
	var p domain.Place
	var city, desc, cover sql.NullString
	var attractions, things, culture, cuisine []byte
	if err := scan(&p.ID, &p.Name, &p.Country, &city, &desc, &cover,
		&attractions, &things, &culture, &cuisine, &p.CreatedAt); err != nil {
		return domain.Place{}, err
	}
	p.City = strPtr(city)
	p.Description = strPtr(desc)
	p.CoverImage = strPtr(cover)
	_ = json.Unmarshal(attractions, &p.Attractions)
	_ = json.Unmarshal(things, &p.ThingsToDo)
	_ = json.Unmarshal(culture, &p.Culture)
	_ = json.Unmarshal(cuisine, &p.Cuisine)
	return p, nil
}

func (r *Repo) GetPlace(ctx context.Context, id int64) (domain.Place, error) {
	row := r.db.QueryRowContext(ctx, selectPlaceCols+`WHERE id=?`, id)
	p, err := scanPlace(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Place{}, domain.ErrNotFound
	}
	return p, err
}

func (r *Repo) ListPlaces(ctx context.Context, limit int) ([]domain.Place, error) {
	rows, err := r.db.QueryContext(ctx, selectPlaceCols+`ORDER BY name LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Place
	for rows.Next() {
		p, err := scanPlace(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ---- hotels ----

const insertHotelSQL = `
INSERT INTO hotels (place_id, name, address, price_per_night, amenities, images)
VALUES (?, ?, ?, ?, ?, ?)
`

const selectHotelCols = `
SELECT id, place_id, name, address, price_per_night, amenities, images
FROM hotels
`

func (r *Repo) CreateHotel(ctx context.Context, h *domain.Hotel) error {
	res, err := r.db.ExecContext(ctx, insertHotelSQL,
		h.PlaceID, h.Name, valStr(h.Address), valF64(h.PricePerNight),
		mustJSON(h.Amenities), mustJSON(h.Images))
	if err != nil {
		return err
	}
	h.ID, err = res.LastInsertId()
	return err
}

func (r *Repo) UpdateHotel(ctx context.Context, h *domain.Hotel) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE hotels SET name=?, address=?, price_per_night=?, amenities=?, images=? WHERE id=?`,
		h.Name, valStr(h.Address), valF64(h.PricePerNight),
		mustJSON(h.Amenities), mustJSON(h.Images), h.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM hotels WHERE id=?`, h.ID).Scan(&exists); err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *Repo) DeleteHotel(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hotels WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanHotel(scan func(dest ...any) error) (domain.Hotel, error) {
	var h domain.Hotel
	var addr sql.NullString
	var price sql.NullFloat64
	var amenities, images []byte
	if err := scan(&h.ID, &h.PlaceID, &h.Name, &addr, &price, &amenities, &images); err != nil {
		return domain.Hotel{}, err
	}
	h.Address = strPtr(addr)
	h.PricePerNight = f64Ptr(price)
	_ = json.Unmarshal(amenities, &h.Amenities)
	_ = json.Unmarshal(images, &h.Images)
	return h, nil
}

func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	row := r.db.QueryRowContext(ctx, selectHotelCols+`WHERE id=?`, id)
	h, err := scanHotel(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, err
}

func (r *Repo) ListHotelsByPlace(ctx context.Context, placeID int64) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, selectHotelCols+`WHERE place_id=? ORDER BY name`, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
