package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripmate/internal/domain"
)

// PlannerService covers the per-user auxiliary records: journeys (next
// trip plans), free-text notes and saved-place bookmarks. Everything is
// owner-scoped; admins may delete.
type PlannerService struct {
	planner domain.PlannerRepository
	places  domain.PlaceRepository
}

func NewPlannerService(p domain.PlannerRepository, pl domain.PlaceRepository) *PlannerService {
	return &PlannerService{planner: p, places: pl}
}

func ownerOnly(actor domain.Actor, ownerID int64, what string) error {
	if actor.ID == ownerID || actor.IsAdmin() {
		return nil
	}
	return fmt.Errorf("%s belongs to another user: %w", what, domain.ErrForbidden)
}

type JourneyInput struct {
	Destination string
	StartDate   *time.Time
	Notes       *string
}

func (s *PlannerService) CreateJourney(ctx context.Context, userID int64, in JourneyInput) (domain.Journey, error) {
	if strings.TrimSpace(in.Destination) == "" {
		return domain.Journey{}, fmt.Errorf("destination is required: %w", domain.ErrValidation)
	}
	j := domain.Journey{UserID: userID, Destination: strings.TrimSpace(in.Destination), StartDate: in.StartDate, Notes: in.Notes}
	if err := s.planner.CreateJourney(ctx, &j); err != nil {
		return domain.Journey{}, err
	}
	return j, nil
}

func (s *PlannerService) UpdateJourney(ctx context.Context, actor domain.Actor, id int64, in JourneyInput) (domain.Journey, error) {
	j, err := s.planner.GetJourney(ctx, id)
	if err != nil {
		return domain.Journey{}, err
	}
	if err := ownerOnly(actor, j.UserID, "journey"); err != nil {
		return domain.Journey{}, err
	}
	if strings.TrimSpace(in.Destination) == "" {
		return domain.Journey{}, fmt.Errorf("destination is required: %w", domain.ErrValidation)
	}
	j.Destination = strings.TrimSpace(in.Destination)
	j.StartDate = in.StartDate
	j.Notes = in.Notes
	if err := s.planner.UpdateJourney(ctx, &j); err != nil {
		return domain.Journey{}, err
	}
	return j, nil
}

func (s *PlannerService) DeleteJourney(ctx context.Context, actor domain.Actor, id int64) error {
	j, err := s.planner.GetJourney(ctx, id)
	if err != nil {
		return err
	}
	if err := ownerOnly(actor, j.UserID, "journey"); err != nil {
		return err
	}
	return s.planner.DeleteJourney(ctx, id)
}

func (s *PlannerService) ListJourneys(ctx context.Context, userID int64) ([]domain.Journey, error) {
	return s.planner.ListJourneysForUser(ctx, userID)
}

type NoteInput struct {
	Title   string
	Content string
}

func (s *PlannerService) CreateNote(ctx context.Context, userID int64, in NoteInput) (domain.Note, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Note{}, fmt.Errorf("title is required: %w", domain.ErrValidation)
	}
	n := domain.Note{UserID: userID, Title: strings.TrimSpace(in.Title), Content: in.Content}
	if err := s.planner.CreateNote(ctx, &n); err != nil {
		return domain.Note{}, err
	}
	return n, nil
}

func (s *PlannerService) UpdateNote(ctx context.Context, actor domain.Actor, id int64, in NoteInput) (domain.Note, error) {
	n, err := s.planner.GetNote(ctx, id)
	if err != nil {
		return domain.Note{}, err
	}
	if err := ownerOnly(actor, n.UserID, "note"); err != nil {
		return domain.Note{}, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return domain.Note{}, fmt.Errorf("title is required: %w", domain.ErrValidation)
	}
	n.Title = strings.TrimSpace(in.Title)
	n.Content = in.Content
	if err := s.planner.UpdateNote(ctx, &n); err != nil {
		return domain.Note{}, err
	}
	return n, nil
}

func (s *PlannerService) DeleteNote(ctx context.Context, actor domain.Actor, id int64) error {
	n, err := s.planner.GetNote(ctx, id)
	if err != nil {
		return err
	}
	if err := ownerOnly(actor, n.UserID, "note"); err != nil {
		return err
	}
	return s.planner.DeleteNote(ctx, id)
}

func (s *PlannerService) ListNotes(ctx context.Context, userID int64) ([]domain.Note, error) {
	return s.planner.ListNotesForUser(ctx, userID)
}

// SavePlace bookmarks a place for the user, once.
func (s *PlannerService) SavePlace(ctx context.Context, userID, placeID int64) (domain.SavedPlace, error) {
	if _, err := s.places.GetPlace(ctx, placeID); err != nil {
		return domain.SavedPlace{}, err
	}
	exists, err := s.planner.SavedPlaceExists(ctx, userID, placeID)
	if err != nil {
		return domain.SavedPlace{}, err
	}
	if exists {
		return domain.SavedPlace{}, fmt.Errorf("place already saved: %w", domain.ErrConflict)
	}
	sp := domain.SavedPlace{UserID: userID, PlaceID: placeID}
	if err := s.planner.CreateSavedPlace(ctx, &sp); err != nil {
		return domain.SavedPlace{}, err
	}
	return sp, nil
}

func (s *PlannerService) UnsavePlace(ctx context.Context, actor domain.Actor, id int64) error {
	sp, err := s.planner.GetSavedPlace(ctx, id)
	if err != nil {
		return err
	}
	if err := ownerOnly(actor, sp.UserID, "saved place"); err != nil {
		return err
	}
	return s.planner.DeleteSavedPlace(ctx, id)
}

func (s *PlannerService) ListSavedPlaces(ctx context.Context, userID int64) ([]domain.SavedPlace, error) {
	return s.planner.ListSavedPlacesForUser(ctx, userID)
}
