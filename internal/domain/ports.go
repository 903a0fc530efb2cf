package domain

import "context"

type UserRepository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id int64) (User, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, b *Booking) error
	GetBooking(ctx context.Context, id int64) (Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status BookingStatus) error
	DeleteBooking(ctx context.Context, id int64) error
	ListBookingsForUser(ctx context.Context, userID int64) ([]BookingView, error)
	ListBookingsForAgency(ctx context.Context, agencyID int64) ([]BookingView, error)
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, rv *Review) error
	GetReview(ctx context.Context, id int64) (Review, error)
	UpdateReview(ctx context.Context, id int64, rating int, comment string) error
	DeleteReview(ctx context.Context, id int64) error
	ListReviews(ctx context.Context, target ReviewTarget, targetID int64, limit int) ([]Review, error)
	ReviewExists(ctx context.Context, authorID int64, target ReviewTarget, targetID int64) (bool, error)
	RatingSummary(ctx context.Context, target ReviewTarget, targetID int64) (RatingSummary, error)
}

type PackageRepository interface {
	CreatePackage(ctx context.Context, p *TravelPackage) error
	GetPackage(ctx context.Context, id int64) (TravelPackage, error)
	UpdatePackage(ctx context.Context, p *TravelPackage) error
	DeletePackage(ctx context.Context, id int64) error
	ListPackages(ctx context.Context, q PackagesQuery) ([]TravelPackage, error)
	ListPackagesForAgency(ctx context.Context, agencyID int64) ([]TravelPackage, error)
}

type PlaceRepository interface {
	CreatePlace(ctx context.Context, p *Place) error
	GetPlace(ctx context.Context, id int64) (Place, error)
	UpdatePlace(ctx context.Context, p *Place) error
	DeletePlace(ctx context.Context, id int64) error
	ListPlaces(ctx context.Context, limit int) ([]Place, error)

	CreateHotel(ctx context.Context, h *Hotel) error
	GetHotel(ctx context.Context, id int64) (Hotel, error)
	UpdateHotel(ctx context.Context, h *Hotel) error
	DeleteHotel(ctx context.Context, id int64) error
	ListHotelsByPlace(ctx context.Context, placeID int64) ([]Hotel, error)
}

type RecommendationRepository interface {
	CreateRecommendation(ctx context.Context, rec *Recommendation) error
	GetRecommendation(ctx context.Context, id int64) (Recommendation, error)
	UpdateRecommendationStatus(ctx context.Context, id int64, status RecommendationStatus) error
	ListRecommendations(ctx context.Context) ([]Recommendation, error)
	ListRecommendationsForUser(ctx context.Context, userID int64) ([]Recommendation, error)
}

type PlannerRepository interface {
	CreateJourney(ctx context.Context, j *Journey) error
	GetJourney(ctx context.Context, id int64) (Journey, error)
	UpdateJourney(ctx context.Context, j *Journey) error
	DeleteJourney(ctx context.Context, id int64) error
	ListJourneysForUser(ctx context.Context, userID int64) ([]Journey, error)

	CreateNote(ctx context.Context, n *Note) error
	GetNote(ctx context.Context, id int64) (Note, error)
	UpdateNote(ctx context.Context, n *Note) error
	DeleteNote(ctx context.Context, id int64) error
	ListNotesForUser(ctx context.Context, userID int64) ([]Note, error)

	CreateSavedPlace(ctx context.Context, sp *SavedPlace) error
	DeleteSavedPlace(ctx context.Context, id int64) error
	GetSavedPlace(ctx context.Context, id int64) (SavedPlace, error)
	SavedPlaceExists(ctx context.Context, userID, placeID int64) (bool, error)
	ListSavedPlacesForUser(ctx context.Context, userID int64) ([]SavedPlace, error)
}

type BlogRepository interface {
	CreateBlog(ctx context.Context, b *Blog) error
	GetBlog(ctx context.Context, id int64) (Blog, error)
	UpdateBlog(ctx context.Context, b *Blog) error
	DeleteBlog(ctx context.Context, id int64) error
	ListBlogs(ctx context.Context, limit int) ([]Blog, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
