package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripmate/internal/domain"
)

// CatalogService manages the admin-curated destination catalog (places
// and their hotels) and serves the public read models.
type CatalogService struct {
	places   domain.PlaceRepository
	reviews  domain.ReviewRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCatalogService(p domain.PlaceRepository, r domain.ReviewRepository, c domain.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{places: p, reviews: r, cache: c, cacheTTL: ttl}
}

func placeKey(id int64) string { return fmt.Sprintf("place:%d", id) }
func hotelKey(id int64) string { return fmt.Sprintf("hotel:%d", id) }

func requireAdmin(actor domain.Actor, what string) error {
	if actor.IsAdmin() {
		return nil
	}
	return fmt.Errorf("%s is admin-only: %w", what, domain.ErrForbidden)
}

type PlaceInput struct {
	Name        string
	Country     string
	City        *string
	Description *string
	CoverImage  *string
	Attractions []domain.PlaceItem
	ThingsToDo  []domain.PlaceItem
	Culture     []domain.PlaceItem
	Cuisine     []domain.PlaceItem
}

func (in *PlaceInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Country) == "" {
		return fmt.Errorf("name and country are required: %w", domain.ErrValidation)
	}
	return nil
}

func (s *CatalogService) CreatePlace(ctx context.Context, actor domain.Actor, in PlaceInput) (domain.Place, error) {
	if err := requireAdmin(actor, "creating places"); err != nil {
		return domain.Place{}, err
	}
	if err := in.validate(); err != nil {
		return domain.Place{}, err
	}
	p := domain.Place{
		Name:        strings.TrimSpace(in.Name),
		Country:     strings.TrimSpace(in.Country),
		City:        in.City,
		Description: in.Description,
		CoverImage:  in.CoverImage,
		Attractions: in.Attractions,
		ThingsToDo:  in.ThingsToDo,
		Culture:     in.Culture,
		Cuisine:     in.Cuisine,
	}
	if err := s.places.CreatePlace(ctx, &p); err != nil {
		return domain.Place{}, err
	}
	return p, nil
}

func (s *CatalogService) UpdatePlace(ctx context.Context, actor domain.Actor, id int64, in PlaceInput) (domain.Place, error) {
	if err := requireAdmin(actor, "updating places"); err != nil {
		return domain.Place{}, err
	}
	p, err := s.places.GetPlace(ctx, id)
	if err != nil {
		return domain.Place{}, err
	}
	if err := in.validate(); err != nil {
		return domain.Place{}, err
	}
	p.Name = strings.TrimSpace(in.Name)
	p.Country = strings.TrimSpace(in.Country)
	p.City = in.City
	p.Description = in.Description
	p.CoverImage = in.CoverImage
	p.Attractions = in.Attractions
	p.ThingsToDo = in.ThingsToDo
	p.Culture = in.Culture
	p.Cuisine = in.Cuisine
	if err := s.places.UpdatePlace(ctx, &p); err != nil {
		return domain.Place{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, placeKey(id))
	}
	return p, nil
}

func (s *CatalogService) DeletePlace(ctx context.Context, actor domain.Actor, id int64) error {
	if err := requireAdmin(actor, "deleting places"); err != nil {
		return err
	}
	if _, err := s.places.GetPlace(ctx, id); err != nil {
		return err
	}
	if err := s.places.DeletePlace(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, placeKey(id))
	}
	return nil
}

// GetPlace returns the place with its review aggregate attached,
// cache-aside. Review writes invalidate this key.
func (s *CatalogService) GetPlace(ctx context.Context, id int64) (domain.PlaceDetail, error) {
	key := placeKey(id)
	var out domain.PlaceDetail
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	p, err := s.places.GetPlace(ctx, id)
	if err != nil {
		return domain.PlaceDetail{}, err
	}
	sum, err := s.reviews.RatingSummary(ctx, domain.TargetPlace, id)
	if err != nil {
		return domain.PlaceDetail{}, err
	}
	out = domain.PlaceDetail{Place: p, Rating: sum}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *CatalogService) ListPlaces(ctx context.Context, limit int) ([]domain.Place, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.places.ListPlaces(ctx, limit)
}

type HotelInput struct {
	Name          string
	Address       *string
	PricePerNight *float64
	Amenities     []string
	Images        []string
}

func (s *CatalogService) CreateHotel(ctx context.Context, actor domain.Actor, placeID int64, in HotelInput) (domain.Hotel, error) {
	if err := requireAdmin(actor, "creating hotels"); err != nil {
		return domain.Hotel{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return domain.Hotel{}, fmt.Errorf("hotel name is required: %w", domain.ErrValidation)
	}
	if _, err := s.places.GetPlace(ctx, placeID); err != nil {
		return domain.Hotel{}, err
	}
	h := domain.Hotel{
		PlaceID:       placeID,
		Name:          strings.TrimSpace(in.Name),
		Address:       in.Address,
		PricePerNight: in.PricePerNight,
		Amenities:     in.Amenities,
		Images:        in.Images,
	}
	if err := s.places.CreateHotel(ctx, &h); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

func (s *CatalogService) UpdateHotel(ctx context.Context, actor domain.Actor, id int64, in HotelInput) (domain.Hotel, error) {
	if err := requireAdmin(actor, "updating hotels"); err != nil {
		return domain.Hotel{}, err
	}
	h, err := s.places.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return domain.Hotel{}, fmt.Errorf("hotel name is required: %w", domain.ErrValidation)
	}
	h.Name = strings.TrimSpace(in.Name)
	h.Address = in.Address
	h.PricePerNight = in.PricePerNight
	h.Amenities = in.Amenities
	h.Images = in.Images
	if err := s.places.UpdateHotel(ctx, &h); err != nil {
		return domain.Hotel{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, hotelKey(id))
	}
	return h, nil
}

func (s *CatalogService) DeleteHotel(ctx context.Context, actor domain.Actor, id int64) error {
	if err := requireAdmin(actor, "deleting hotels"); err != nil {
		return err
	}
	if _, err := s.places.GetHotel(ctx, id); err != nil {
		return err
	}
	if err := s.places.DeleteHotel(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, hotelKey(id))
	}
	return nil
}

func (s *CatalogService) GetHotel(ctx context.Context, id int64) (domain.HotelDetail, error) {
	key := hotelKey(id)
	var out domain.HotelDetail
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	h, err := s.places.GetHotel(ctx, id)
	if err != nil {
		return domain.HotelDetail{}, err
	}
	sum, err := s.reviews.RatingSummary(ctx, domain.TargetHotel, id)
	if err != nil {
		return domain.HotelDetail{}, err
	}
	out = domain.HotelDetail{Hotel: h, Rating: sum}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *CatalogService) ListHotels(ctx context.Context, placeID int64) ([]domain.Hotel, error) {
	if _, err := s.places.GetPlace(ctx, placeID); err != nil {
		return nil, err
	}
	return s.places.ListHotelsByPlace(ctx, placeID)
}
