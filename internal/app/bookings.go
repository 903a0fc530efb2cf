package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripmate/internal/domain"
)

type BookingService struct {
	bookings domain.BookingRepository
	packages domain.PackageRepository
}

func NewBookingService(b domain.BookingRepository, p domain.PackageRepository) *BookingService {
	return &BookingService{bookings: b, packages: p}
}

type CreateBookingInput struct {
	PackageID  int64
	Travellers int
	TravelDate time.Time
	Address    string
	Phone      string
}

// Create validates the request, prices it against the package and
// persists a pending booking. totalPrice is fixed at creation and does
// not follow later package price edits.
func (s *BookingService) Create(ctx context.Context, userID int64, in CreateBookingInput) (domain.Booking, error) {
	if in.Travellers < 1 {
		return domain.Booking{}, fmt.Errorf("numberOfTravellers must be at least 1: %w", domain.ErrValidation)
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if in.TravelDate.UTC().Truncate(24 * time.Hour).Before(today) {
		return domain.Booking{}, fmt.Errorf("travelDate must not be in the past: %w", domain.ErrValidation)
	}
	pkg, err := s.packages.GetPackage(ctx, in.PackageID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Booking{}, fmt.Errorf("package %d: %w", in.PackageID, domain.ErrNotFound)
		}
		return domain.Booking{}, err
	}

	b := domain.Booking{
		UserID:     userID,
		PackageID:  pkg.ID,
		Travellers: in.Travellers,
		TravelDate: in.TravelDate,
		TotalPrice: pkg.Price * float64(in.Travellers),
		Address:    strings.TrimSpace(in.Address),
		Phone:      strings.TrimSpace(in.Phone),
		Status:     domain.BookingPending,
	}
	if err := s.bookings.CreateBooking(ctx, &b); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

// UpdateStatus applies a confirm/cancel action. Confirm is reserved for
// the owning agency or an admin; cancel additionally allows the booking's
// own user. Authorization is checked before transition validity so a
// stranger probing a cancelled booking still sees 403, not 400.
func (s *BookingService) UpdateStatus(ctx context.Context, actor domain.Actor, bookingID int64, action domain.BookingAction) (domain.Booking, error) {
	b, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}

	allowed := actor.IsAdmin()
	if !allowed && action == domain.ActionCancel && actor.ID == b.UserID {
		allowed = true
	}
	if !allowed && actor.Role == domain.RoleAgency {
		if pkg, perr := s.packages.GetPackage(ctx, b.PackageID); perr == nil && pkg.AgencyID == actor.ID {
			allowed = true
		}
	}
	if !allowed {
		return domain.Booking{}, fmt.Errorf("not allowed to %s booking %d: %w", action, bookingID, domain.ErrForbidden)
	}

	next, ok := domain.NextStatus(b.Status, action)
	if !ok {
		return domain.Booking{}, fmt.Errorf("cannot %s a %s booking: %w", action, b.Status, domain.ErrValidation)
	}
	if err := s.bookings.UpdateBookingStatus(ctx, bookingID, next); err != nil {
		return domain.Booking{}, err
	}
	b.Status = next
	return b, nil
}

// Delete removes the booking permanently. Owner, owning agency or admin.
func (s *BookingService) Delete(ctx context.Context, actor domain.Actor, bookingID int64) error {
	b, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	allowed := actor.IsAdmin() || actor.ID == b.UserID
	if !allowed && actor.Role == domain.RoleAgency {
		if pkg, perr := s.packages.GetPackage(ctx, b.PackageID); perr == nil && pkg.AgencyID == actor.ID {
			allowed = true
		}
	}
	if !allowed {
		return fmt.Errorf("not allowed to delete booking %d: %w", bookingID, domain.ErrForbidden)
	}
	return s.bookings.DeleteBooking(ctx, bookingID)
}

func (s *BookingService) ListForUser(ctx context.Context, userID int64) ([]domain.BookingView, error) {
	return s.bookings.ListBookingsForUser(ctx, userID)
}

func (s *BookingService) ListForAgency(ctx context.Context, agencyID int64) ([]domain.BookingView, error) {
	return s.bookings.ListBookingsForAgency(ctx, agencyID)
}
