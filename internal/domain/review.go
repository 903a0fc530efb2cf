package domain

import (
	"fmt"
	"time"
)

// ReviewTarget discriminates what a review points at.
type ReviewTarget string

const (
	TargetPlace ReviewTarget = "place"
	TargetHotel ReviewTarget = "hotel"
)

func ParseReviewTarget(s string) (ReviewTarget, error) {
	switch ReviewTarget(s) {
	case TargetPlace, TargetHotel:
		return ReviewTarget(s), nil
	}
	return "", fmt.Errorf("unknown review target %q: %w", s, ErrValidation)
}

type Review struct {
	ID         int64        `json:"id"`
	AuthorID   int64        `json:"authorId"`
	AuthorName string       `json:"authorName,omitempty"` // joined at read time
	TargetType ReviewTarget `json:"type"`
	TargetID   int64        `json:"targetId"`
	Rating     int          `json:"rating"` // 1..5
	Comment    string       `json:"comment"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// RatingSummary is the derived aggregate over all live reviews of a
// target. Zero reviews means Count 0 and Average 0.
type RatingSummary struct {
	Average float64 `json:"averageRating"`
	Count   int     `json:"reviewCount"`
}
