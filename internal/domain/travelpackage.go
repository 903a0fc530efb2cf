package domain

import "time"

// ItineraryDay is one entry of a package's day-by-day plan. Day numbers
// are 1-based and contiguous; services renumber on every write.
type ItineraryDay struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Activities    []string `json:"activities"`
	Meals         []string `json:"meals"`
	Accommodation *string  `json:"accommodation,omitempty"`
}

// PackagePolicy holds a package's terms. Absent means the agency has not
// published any terms yet.
type PackagePolicy struct {
	Included     []string `json:"included"`
	Excluded     []string `json:"excluded"`
	Cancellation *string  `json:"cancellation,omitempty"`
	Payment      *string  `json:"payment,omitempty"`
}

type TravelPackage struct {
	ID           int64          `json:"id"`
	AgencyID     int64          `json:"agencyId"`
	Name         string         `json:"name"`
	Description  *string        `json:"description,omitempty"`
	Price        float64        `json:"price"` // per traveller
	DurationDays int            `json:"durationDays"`
	Highlights   []string       `json:"highlights"`
	Itinerary    []ItineraryDay `json:"itinerary"`
	Policy       *PackagePolicy `json:"policy,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// PackagesQuery filters the public package listing.
type PackagesQuery struct {
	Q     *string // free-text match on the package name
	Limit int
}
