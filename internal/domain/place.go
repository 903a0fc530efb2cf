package domain

import "time"

// PlaceItem is one entry of a place's display sub-collections
// (attractions, things to do, local culture, cuisine).
type PlaceItem struct {
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

type Place struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	City        *string     `json:"city,omitempty"`
	Description *string     `json:"description,omitempty"`
	CoverImage  *string     `json:"coverImage,omitempty"`
	Attractions []PlaceItem `json:"attractions"`
	ThingsToDo  []PlaceItem `json:"thingsToDo"`
	Culture     []PlaceItem `json:"localCulture"`
	Cuisine     []PlaceItem `json:"cuisine"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// PlaceDetail is the read model for a single place, with the review
// aggregate attached at read time.
type PlaceDetail struct {
	Place
	Rating RatingSummary `json:"rating"`
}

type Hotel struct {
	ID            int64    `json:"id"`
	PlaceID       int64    `json:"placeId"`
	Name          string   `json:"name"`
	Address       *string  `json:"address,omitempty"`
	PricePerNight *float64 `json:"pricePerNight,omitempty"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

type HotelDetail struct {
	Hotel
	Rating RatingSummary `json:"rating"`
}
