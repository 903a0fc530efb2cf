package app

import (
	"context"
	"fmt"
	"strings"

	"tripmate/internal/domain"
)

// ModerationService handles user-submitted place recommendations and
// their admin approve/reject flow.
type ModerationService struct {
	recs domain.RecommendationRepository
}

func NewModerationService(r domain.RecommendationRepository) *ModerationService {
	return &ModerationService{recs: r}
}

type RecommendationInput struct {
	Name        string
	Country     string
	Description *string
	Image       *string
}

func (s *ModerationService) Submit(ctx context.Context, userID int64, in RecommendationInput) (domain.Recommendation, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Country) == "" {
		return domain.Recommendation{}, fmt.Errorf("name and country are required: %w", domain.ErrValidation)
	}
	rec := domain.Recommendation{
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Country:     strings.TrimSpace(in.Country),
		Description: in.Description,
		Image:       in.Image,
		Status:      domain.RecommendationPending,
	}
	if err := s.recs.CreateRecommendation(ctx, &rec); err != nil {
		return domain.Recommendation{}, err
	}
	return rec, nil
}

// List returns every recommendation for admins, the caller's own rows
// otherwise.
func (s *ModerationService) List(ctx context.Context, actor domain.Actor) ([]domain.Recommendation, error) {
	if actor.IsAdmin() {
		return s.recs.ListRecommendations(ctx)
	}
	return s.recs.ListRecommendationsForUser(ctx, actor.ID)
}

// Moderate approves or rejects a pending recommendation. Admin only;
// moderated entries are final.
func (s *ModerationService) Moderate(ctx context.Context, actor domain.Actor, id int64, action string) (domain.Recommendation, error) {
	if err := requireAdmin(actor, "moderating recommendations"); err != nil {
		return domain.Recommendation{}, err
	}
	var next domain.RecommendationStatus
	switch action {
	case "approve":
		next = domain.RecommendationApproved
	case "reject":
		next = domain.RecommendationRejected
	default:
		return domain.Recommendation{}, fmt.Errorf("action must be approve or reject: %w", domain.ErrValidation)
	}
	rec, err := s.recs.GetRecommendation(ctx, id)
	if err != nil {
		return domain.Recommendation{}, err
	}
	if rec.Status != domain.RecommendationPending {
		return domain.Recommendation{}, fmt.Errorf("recommendation already %s: %w", rec.Status, domain.ErrValidation)
	}
	if err := s.recs.UpdateRecommendationStatus(ctx, id, next); err != nil {
		return domain.Recommendation{}, err
	}
	rec.Status = next
	return rec, nil
}
