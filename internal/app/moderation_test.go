package app_test

import (
	"context"
	"errors"
	"testing"

	"tripmate/internal/app"
	"tripmate/internal/domain"
)

func TestSubmitRecommendation(t *testing.T) {
	repo := newMemRepo()
	svc := app.NewModerationService(repo)

	rec, err := svc.Submit(context.Background(), 3, app.RecommendationInput{Name: "Ajloun", Country: "Jordan"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.Status != domain.RecommendationPending {
		t.Fatalf("status = %s, want %s", rec.Status, domain.RecommendationPending)
	}

	if _, err := svc.Submit(context.Background(), 3, app.RecommendationInput{Name: " ", Country: "Jordan"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("blank name: err = %v, want ErrValidation", err)
	}
}

func TestListRecommendations_ScopedByRole(t *testing.T) {
	repo := newMemRepo()
	svc := app.NewModerationService(repo)

	for _, uid := range []int64{3, 3, 4} {
		if _, err := svc.Submit(context.Background(), uid, app.RecommendationInput{Name: "x", Country: "y"}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	mine, err := svc.List(context.Background(), domain.Actor{ID: 3, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("list own: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("own len = %d, want 2", len(mine))
	}

	all, err := svc.List(context.Background(), domain.Actor{ID: 1, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("admin len = %d, want 3", len(all))
	}
}

func TestModerate_AdminOnlyAndFinal(t *testing.T) {
	repo := newMemRepo()
	svc := app.NewModerationService(repo)
	admin := domain.Actor{ID: 1, Role: domain.RoleAdmin}

	rec, err := svc.Submit(context.Background(), 3, app.RecommendationInput{Name: "Ajloun", Country: "Jordan"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := svc.Moderate(context.Background(), domain.Actor{ID: 3, Role: domain.RoleUser}, rec.ID, "approve"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("user moderate: err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Moderate(context.Background(), admin, rec.ID, "shred"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("bad action: err = %v, want ErrValidation", err)
	}

	got, err := svc.Moderate(context.Background(), admin, rec.ID, "approve")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got.Status != domain.RecommendationApproved {
		t.Fatalf("status = %s, want %s", got.Status, domain.RecommendationApproved)
	}

	// A moderated entry is final.
	if _, err := svc.Moderate(context.Background(), admin, rec.ID, "reject"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("re-moderate: err = %v, want ErrValidation", err)
	}
}
