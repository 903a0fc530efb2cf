package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripmate/internal/app"
	"tripmate/internal/domain"
)

func TestJourneys_OwnerScoped(t *testing.T) {
	repo := newMemRepo()
	svc := app.NewPlannerService(repo, repo)

	j, err := svc.CreateJourney(context.Background(), 3, app.JourneyInput{
		Destination: "Kyoto",
		StartDate:   ptr(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateJourney(context.Background(), 3, app.JourneyInput{Destination: "  "}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("blank destination: err = %v, want ErrValidation", err)
	}

	if _, err := svc.UpdateJourney(context.Background(), domain.Actor{ID: 4, Role: domain.RoleUser}, j.ID, app.JourneyInput{Destination: "Osaka"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign update: err = %v, want ErrForbidden", err)
	}
	got, err := svc.UpdateJourney(context.Background(), domain.Actor{ID: 3, Role: domain.RoleUser}, j.ID, app.JourneyInput{Destination: "Osaka"})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if got.Destination != "Osaka" {
		t.Fatalf("destination = %q, want Osaka", got.Destination)
	}

	if err := svc.DeleteJourney(context.Background(), domain.Actor{ID: 4, Role: domain.RoleUser}, j.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign delete: err = %v, want ErrForbidden", err)
	}
	// Admin delete is allowed.
	if err := svc.DeleteJourney(context.Background(), domain.Actor{ID: 1, Role: domain.RoleAdmin}, j.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}

func TestNotes_CRUD(t *testing.T) {
	repo := newMemRepo()
	svc := app.NewPlannerService(repo, repo)

	n, err := svc.CreateNote(context.Background(), 3, app.NoteInput{Title: "packing", Content: "sunscreen"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateNote(context.Background(), 3, app.NoteInput{Title: " "}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("blank title: err = %v, want ErrValidation", err)
	}

	got, err := svc.UpdateNote(context.Background(), domain.Actor{ID: 3, Role: domain.RoleUser}, n.ID, app.NoteInput{Title: "packing", Content: "sunscreen, hat"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Content != "sunscreen, hat" {
		t.Fatalf("content = %q", got.Content)
	}

	list, err := svc.ListNotes(context.Background(), 3)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v, len %d", err, len(list))
	}
	if err := svc.DeleteNote(context.Background(), domain.Actor{ID: 3, Role: domain.RoleUser}, n.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestSavePlace_OncePerUser(t *testing.T) {
	repo := newMemRepo()
	place := seedPlace(t, repo, "Petra")
	svc := app.NewPlannerService(repo, repo)

	sp, err := svc.SavePlace(context.Background(), 3, place.ID)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if sp.PlaceName != "Petra" {
		t.Fatalf("placeName = %q, want Petra", sp.PlaceName)
	}
	if _, err := svc.SavePlace(context.Background(), 3, place.ID); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate save: err = %v, want ErrConflict", err)
	}
	if _, err := svc.SavePlace(context.Background(), 3, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown place: err = %v, want ErrNotFound", err)
	}
	// Another user may save the same place.
	if _, err := svc.SavePlace(context.Background(), 4, place.ID); err != nil {
		t.Fatalf("other user save: %v", err)
	}

	if err := svc.UnsavePlace(context.Background(), domain.Actor{ID: 4, Role: domain.RoleUser}, sp.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign unsave: err = %v, want ErrForbidden", err)
	}
	if err := svc.UnsavePlace(context.Background(), domain.Actor{ID: 3, Role: domain.RoleUser}, sp.ID); err != nil {
		t.Fatalf("unsave: %v", err)
	}
	// Unsave frees the slot for a fresh save.
	if _, err := svc.SavePlace(context.Background(), 3, place.ID); err != nil {
		t.Fatalf("re-save: %v", err)
	}
}
