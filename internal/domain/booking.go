package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	// BookingRefunded is terminal and set only outside the API
	// (payment-gateway settlement); no action reaches it.
	BookingRefunded BookingStatus = "refunded"
)

type BookingAction string

const (
	ActionConfirm BookingAction = "confirm"
	ActionCancel  BookingAction = "cancel"
)

func ParseBookingAction(s string) (BookingAction, error) {
	switch BookingAction(s) {
	case ActionConfirm, ActionCancel:
		return BookingAction(s), nil
	}
	return "", ErrValidation
}

// NextStatus applies the booking transition table:
// pending -> confirmed (confirm), pending|confirmed -> cancelled (cancel).
// Cancelled and refunded are terminal.
func NextStatus(cur BookingStatus, action BookingAction) (BookingStatus, bool) {
	switch action {
	case ActionConfirm:
		if cur == BookingPending {
			return BookingConfirmed, true
		}
	case ActionCancel:
		if cur == BookingPending || cur == BookingConfirmed {
			return BookingCancelled, true
		}
	}
	return cur, false
}

type Booking struct {
	ID         int64         `json:"id"`
	UserID     int64         `json:"userId"`
	PackageID  int64         `json:"packageId"`
	Travellers int           `json:"numberOfTravellers"`
	TravelDate time.Time     `json:"travelDate"`
	TotalPrice float64       `json:"totalPrice"`
	Address    string        `json:"address"`
	Phone      string        `json:"phoneNumber"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// PackageSnapshot is the display slice of a package joined at read time.
// It is not stored on the booking and does not track later price edits.
type PackageSnapshot struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	DurationDays int     `json:"durationDays"`
	Price        float64 `json:"price"`
}

// BookingView is a booking as listed to users and agencies. Package is
// nil and PackageDeleted true when the referenced package is gone; the
// booking keeps its dangling packageId on purpose.
type BookingView struct {
	Booking
	Package        *PackageSnapshot `json:"package,omitempty"`
	PackageDeleted bool             `json:"packageDeleted"`
}
