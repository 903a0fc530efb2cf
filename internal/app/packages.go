package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripmate/internal/domain"
)

type PackageService struct {
	packages domain.PackageRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewPackageService(p domain.PackageRepository, c domain.Cache, ttl time.Duration) *PackageService {
	return &PackageService{packages: p, cache: c, cacheTTL: ttl}
}

func packageKey(id int64) string { return fmt.Sprintf("package:%d", id) }

type PackageInput struct {
	Name         string
	Description  *string
	Price        float64
	DurationDays int
	Highlights   []string
	Itinerary    []domain.ItineraryDay
	Policy       *domain.PackagePolicy
}

func (in *PackageInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("name must not be empty: %w", domain.ErrValidation)
	}
	if in.Price < 0 {
		return fmt.Errorf("price must not be negative: %w", domain.ErrValidation)
	}
	if in.DurationDays < 1 {
		return fmt.Errorf("duration must be at least 1 day: %w", domain.ErrValidation)
	}
	return nil
}

// renumberItinerary keeps day numbers 1-based and contiguous in input
// order, regardless of what the client sent.
func renumberItinerary(days []domain.ItineraryDay) []domain.ItineraryDay {
	out := make([]domain.ItineraryDay, len(days))
	copy(out, days)
	for i := range out {
		out[i].Day = i + 1
	}
	return out
}

// Create persists a package owned by the calling agency.
func (s *PackageService) Create(ctx context.Context, actor domain.Actor, in PackageInput) (domain.TravelPackage, error) {
	if actor.Role != domain.RoleAgency && !actor.IsAdmin() {
		return domain.TravelPackage{}, fmt.Errorf("only agencies may create packages: %w", domain.ErrForbidden)
	}
	if err := in.validate(); err != nil {
		return domain.TravelPackage{}, err
	}
	p := domain.TravelPackage{
		AgencyID:     actor.ID,
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Price:        in.Price,
		DurationDays: in.DurationDays,
		Highlights:   in.Highlights,
		Itinerary:    renumberItinerary(in.Itinerary),
		Policy:       in.Policy,
	}
	if err := s.packages.CreatePackage(ctx, &p); err != nil {
		return domain.TravelPackage{}, err
	}
	return p, nil
}

func (s *PackageService) authorize(actor domain.Actor, p domain.TravelPackage) error {
	if actor.IsAdmin() || (actor.Role == domain.RoleAgency && actor.ID == p.AgencyID) {
		return nil
	}
	return fmt.Errorf("package %d is not yours: %w", p.ID, domain.ErrForbidden)
}

func (s *PackageService) Update(ctx context.Context, actor domain.Actor, id int64, in PackageInput) (domain.TravelPackage, error) {
	p, err := s.packages.GetPackage(ctx, id)
	if err != nil {
		return domain.TravelPackage{}, err
	}
	if err := s.authorize(actor, p); err != nil {
		return domain.TravelPackage{}, err
	}
	if err := in.validate(); err != nil {
		return domain.TravelPackage{}, err
	}
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = in.Price
	p.DurationDays = in.DurationDays
	p.Highlights = in.Highlights
	p.Itinerary = renumberItinerary(in.Itinerary)
	p.Policy = in.Policy
	if err := s.packages.UpdatePackage(ctx, &p); err != nil {
		return domain.TravelPackage{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, packageKey(id))
	}
	return p, nil
}

// Delete removes the package. Existing bookings keep their dangling
// packageId; list reads surface packageDeleted instead.
func (s *PackageService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	p, err := s.packages.GetPackage(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(actor, p); err != nil {
		return err
	}
	if err := s.packages.DeletePackage(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, packageKey(id))
	}
	return nil
}

func (s *PackageService) Get(ctx context.Context, id int64) (domain.TravelPackage, error) {
	key := packageKey(id)
	var p domain.TravelPackage
	if ok, _ := s.cache.Get(ctx, key, &p); ok {
		return p, nil
	}
	p, err := s.packages.GetPackage(ctx, id)
	if err != nil {
		return domain.TravelPackage{}, err
	}
	_ = s.cache.Set(ctx, key, p, int(s.cacheTTL.Seconds()))
	return p, nil
}

func (s *PackageService) List(ctx context.Context, q domain.PackagesQuery) ([]domain.TravelPackage, error) {
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
	return s.packages.ListPackages(ctx, q)
}

func (s *PackageService) ListForAgency(ctx context.Context, agencyID int64) ([]domain.TravelPackage, error) {
	return s.packages.ListPackagesForAgency(ctx, agencyID)
}
