package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripmate/internal/domain"
)

type ReviewService struct {
	reviews  domain.ReviewRepository
	places   domain.PlaceRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewReviewService(r domain.ReviewRepository, p domain.PlaceRepository, c domain.Cache, ttl time.Duration) *ReviewService {
	return &ReviewService{reviews: r, places: p, cache: c, cacheTTL: ttl}
}

func ratingKey(t domain.ReviewTarget, id int64) string {
	return fmt.Sprintf("rating:%s:%d", t, id)
}

func (s *ReviewService) validate(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(comment) == "" {
		return fmt.Errorf("comment must not be empty: %w", domain.ErrValidation)
	}
	return nil
}

func (s *ReviewService) resolveTarget(ctx context.Context, t domain.ReviewTarget, id int64) error {
	var err error
	switch t {
	case domain.TargetPlace:
		_, err = s.places.GetPlace(ctx, id)
	case domain.TargetHotel:
		_, err = s.places.GetHotel(ctx, id)
	default:
		return fmt.Errorf("unknown review target %q: %w", t, domain.ErrValidation)
	}
	return err
}

// Submit creates a review. One review per (author, target): checked here
// and backed by a unique key in the store, so racing submits still lose.
func (s *ReviewService) Submit(ctx context.Context, authorID int64, target domain.ReviewTarget, targetID int64, rating int, comment string) (domain.Review, error) {
	if err := s.validate(rating, comment); err != nil {
		return domain.Review{}, err
	}
	if err := s.resolveTarget(ctx, target, targetID); err != nil {
		return domain.Review{}, err
	}
	exists, err := s.reviews.ReviewExists(ctx, authorID, target, targetID)
	if err != nil {
		return domain.Review{}, err
	}
	if exists {
		return domain.Review{}, fmt.Errorf("already reviewed this %s: %w", target, domain.ErrConflict)
	}

	rv := domain.Review{
		AuthorID:   authorID,
		TargetType: target,
		TargetID:   targetID,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
	}
	if err := s.reviews.CreateReview(ctx, &rv); err != nil {
		return domain.Review{}, err
	}
	s.invalidate(ctx, target, targetID)
	return rv, nil
}

func (s *ReviewService) Update(ctx context.Context, actor domain.Actor, reviewID int64, rating int, comment string) (domain.Review, error) {
	if err := s.validate(rating, comment); err != nil {
		return domain.Review{}, err
	}
	rv, err := s.reviews.GetReview(ctx, reviewID)
	if err != nil {
		return domain.Review{}, err
	}
	if rv.AuthorID != actor.ID && !actor.IsAdmin() {
		return domain.Review{}, fmt.Errorf("not the author of review %d: %w", reviewID, domain.ErrForbidden)
	}
	if err := s.reviews.UpdateReview(ctx, reviewID, rating, strings.TrimSpace(comment)); err != nil {
		return domain.Review{}, err
	}
	rv.Rating = rating
	rv.Comment = strings.TrimSpace(comment)
	s.invalidate(ctx, rv.TargetType, rv.TargetID)
	return rv, nil
}

func (s *ReviewService) Delete(ctx context.Context, actor domain.Actor, reviewID int64) error {
	rv, err := s.reviews.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if rv.AuthorID != actor.ID && !actor.IsAdmin() {
		return fmt.Errorf("not the author of review %d: %w", reviewID, domain.ErrForbidden)
	}
	if err := s.reviews.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	s.invalidate(ctx, rv.TargetType, rv.TargetID)
	return nil
}

// List returns reviews newest-first with author display names joined.
func (s *ReviewService) List(ctx context.Context, target domain.ReviewTarget, targetID int64, limit int) ([]domain.Review, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.reviews.ListReviews(ctx, target, targetID, limit)
}

// Aggregate returns {averageRating, reviewCount}, cache-aside.
func (s *ReviewService) Aggregate(ctx context.Context, target domain.ReviewTarget, targetID int64) (domain.RatingSummary, error) {
	key := ratingKey(target, targetID)
	var out domain.RatingSummary
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out, err := s.reviews.RatingSummary(ctx, target, targetID)
	if err != nil {
		return domain.RatingSummary{}, err
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

// invalidate drops the aggregate and the target's cached read model, so
// the next read recomputes against the live review set.
func (s *ReviewService) invalidate(ctx context.Context, target domain.ReviewTarget, targetID int64) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, ratingKey(target, targetID))
	_ = s.cache.Del(ctx, fmt.Sprintf("%s:%d", target, targetID))
}
