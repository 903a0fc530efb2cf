package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripmate/internal/app"
	"tripmate/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func newPackageService(repo *memRepo, cache *fakeCache) *app.PackageService {
	return app.NewPackageService(repo, cache, 10*time.Minute)
}

func TestCreatePackage_RenumbersItinerary(t *testing.T) {
	repo := newMemRepo()
	svc := newPackageService(repo, newFakeCache())
	agency := domain.Actor{ID: 7, Role: domain.RoleAgency}

	p, err := svc.Create(context.Background(), agency, app.PackageInput{
		Name:         "Jordan Highlights",
		Price:        450,
		DurationDays: 3,
		Itinerary: []domain.ItineraryDay{
			{Day: 9, Title: "Amman"},
			{Day: 2, Title: "Petra"},
			{Day: 2, Title: "Wadi Rum"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.AgencyID != agency.ID {
		t.Fatalf("agencyID = %d, want %d", p.AgencyID, agency.ID)
	}
	for i, d := range p.Itinerary {
		if d.Day != i+1 {
			t.Fatalf("day[%d] = %d, want %d", i, d.Day, i+1)
		}
	}
	if p.Itinerary[1].Title != "Petra" {
		t.Fatalf("itinerary order changed: %+v", p.Itinerary)
	}
}

func TestCreatePackage_Validation(t *testing.T) {
	repo := newMemRepo()
	svc := newPackageService(repo, newFakeCache())
	agency := domain.Actor{ID: 7, Role: domain.RoleAgency}

	cases := []struct {
		name string
		in   app.PackageInput
	}{
		{"blank name", app.PackageInput{Name: "  ", Price: 10, DurationDays: 1}},
		{"negative price", app.PackageInput{Name: "x", Price: -1, DurationDays: 1}},
		{"zero duration", app.PackageInput{Name: "x", Price: 10, DurationDays: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), agency, tc.in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}

	// Plain users cannot create packages at all.
	user := domain.Actor{ID: 3, Role: domain.RoleUser}
	if _, err := svc.Create(context.Background(), user, app.PackageInput{Name: "x", Price: 10, DurationDays: 1}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("user create: err = %v, want ErrForbidden", err)
	}
}

func TestUpdatePackage_OwnershipAndCacheInvalidation(t *testing.T) {
	repo := newMemRepo()
	cache := newFakeCache()
	svc := newPackageService(repo, cache)
	owner := domain.Actor{ID: 7, Role: domain.RoleAgency}

	p, err := svc.Create(context.Background(), owner, app.PackageInput{Name: "Old", Price: 100, DurationDays: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// Warm the cache through the read path.
	if _, err := svc.Get(context.Background(), p.ID); err != nil {
		t.Fatalf("warm get: %v", err)
	}

	other := domain.Actor{ID: 8, Role: domain.RoleAgency}
	if _, err := svc.Update(context.Background(), other, p.ID, app.PackageInput{Name: "Stolen", Price: 1, DurationDays: 1}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign update: err = %v, want ErrForbidden", err)
	}

	updated, err := svc.Update(context.Background(), owner, p.ID, app.PackageInput{
		Name: "New", Price: 150, DurationDays: 2, Description: ptr("refreshed"),
	})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Name != "New" || updated.Price != 150 {
		t.Fatalf("unexpected package: %+v", updated)
	}

	// The stale cached copy must be gone, so the next read sees "New".
	got, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Name != "New" {
		t.Fatalf("served stale package %q after update", got.Name)
	}
}

func TestDeletePackage_AdminOverride(t *testing.T) {
	repo := newMemRepo()
	svc := newPackageService(repo, newFakeCache())
	owner := domain.Actor{ID: 7, Role: domain.RoleAgency}

	p, err := svc.Create(context.Background(), owner, app.PackageInput{Name: "Doomed", Price: 10, DurationDays: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), domain.Actor{ID: 3, Role: domain.RoleUser}, p.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("user delete: err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(context.Background(), domain.Actor{ID: 1, Role: domain.RoleAdmin}, p.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get after delete: err = %v, want ErrNotFound", err)
	}
}

func TestListPackagesForAgency_FiltersByOwner(t *testing.T) {
	repo := newMemRepo()
	svc := newPackageService(repo, newFakeCache())

	a := domain.Actor{ID: 7, Role: domain.RoleAgency}
	b := domain.Actor{ID: 8, Role: domain.RoleAgency}
	for _, actor := range []domain.Actor{a, a, b} {
		if _, err := svc.Create(context.Background(), actor, app.PackageInput{Name: "p", Price: 10, DurationDays: 1}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	mine, err := svc.ListForAgency(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("len = %d, want 2", len(mine))
	}
	for _, p := range mine {
		if p.AgencyID != a.ID {
			t.Fatalf("foreign package in agency list: %+v", p)
		}
	}
}
