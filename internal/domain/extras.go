package domain

import "time"

type RecommendationStatus string

const (
	RecommendationPending  RecommendationStatus = "pending"
	RecommendationApproved RecommendationStatus = "approved"
	RecommendationRejected RecommendationStatus = "rejected"
)

// Recommendation is a user-submitted place suggestion awaiting admin
// moderation. Only pending entries can transition.
type Recommendation struct {
	ID          int64                `json:"id"`
	UserID      int64                `json:"userId"`
	Name        string               `json:"name"`
	Country     string               `json:"country"`
	Description *string              `json:"description,omitempty"`
	Image       *string              `json:"image,omitempty"`
	Status      RecommendationStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// Journey is a user's next-trip plan.
type Journey struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Destination string     `json:"destination"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SavedPlace is a per-user bookmark; one row per (user, place).
type SavedPlace struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	PlaceID   int64     `json:"placeId"`
	PlaceName string    `json:"placeName,omitempty"` // joined at read time
	CreatedAt time.Time `json:"createdAt"`
}

type Blog struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName,omitempty"` // joined at read time
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CoverImage *string   `json:"coverImage,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
