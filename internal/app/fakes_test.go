package app_test

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"tripmate/internal/domain"
)

// memRepo is an in-memory stand-in for the storage ports used by the
// service tests.
type memRepo struct {
	nextID   int64
	packages map[int64]domain.TravelPackage
	bookings map[int64]domain.Booking
	reviews  map[int64]domain.Review
	places   map[int64]domain.Place
	hotels   map[int64]domain.Hotel
	recs     map[int64]domain.Recommendation
	journeys map[int64]domain.Journey
	notes    map[int64]domain.Note
	saved    map[int64]domain.SavedPlace
	blogs    map[int64]domain.Blog
}

func newMemRepo() *memRepo {
	return &memRepo{
		packages: map[int64]domain.TravelPackage{},
		bookings: map[int64]domain.Booking{},
		reviews:  map[int64]domain.Review{},
		places:   map[int64]domain.Place{},
		hotels:   map[int64]domain.Hotel{},
		recs:     map[int64]domain.Recommendation{},
		journeys: map[int64]domain.Journey{},
		notes:    map[int64]domain.Note{},
		saved:    map[int64]domain.SavedPlace{},
		blogs:    map[int64]domain.Blog{},
	}
}

func (m *memRepo) id() int64 { m.nextID++; return m.nextID }

// ---- PackageRepository ----

func (m *memRepo) CreatePackage(ctx context.Context, p *domain.TravelPackage) error {
	p.ID = m.id()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	m.packages[p.ID] = *p
	return nil
}

func (m *memRepo) GetPackage(ctx context.Context, id int64) (domain.TravelPackage, error) {
	p, ok := m.packages[id]
	if !ok {
		return domain.TravelPackage{}, domain.ErrNotFound
	}
	return p, nil
}

func (m *memRepo) UpdatePackage(ctx context.Context, p *domain.TravelPackage) error {
	if _, ok := m.packages[p.ID]; !ok {
		return domain.ErrNotFound
	}
	m.packages[p.ID] = *p
	return nil
}

func (m *memRepo) DeletePackage(ctx context.Context, id int64) error {
	if _, ok := m.packages[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.packages, id)
	return nil
}

func (m *memRepo) ListPackages(ctx context.Context, q domain.PackagesQuery) ([]domain.TravelPackage, error) {
	var out []domain.TravelPackage
	for _, p := range m.packages {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) ListPackagesForAgency(ctx context.Context, agencyID int64) ([]domain.TravelPackage, error) {
	var out []domain.TravelPackage
	for _, p := range m.packages {
		if p.AgencyID == agencyID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---- BookingRepository ----

func (m *memRepo) CreateBooking(ctx context.Context, b *domain.Booking) error {
	b.ID = m.id()
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	m.bookings[b.ID] = *b
	return nil
}

func (m *memRepo) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, nil
}

func (m *memRepo) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	b, ok := m.bookings[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Status = status
	m.bookings[id] = b
	return nil
}

func (m *memRepo) DeleteBooking(ctx context.Context, id int64) error {
	if _, ok := m.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

func (m *memRepo) listBookings(match func(domain.Booking) bool) []domain.BookingView {
	var out []domain.BookingView
	for _, b := range m.bookings {
		if !match(b) {
			continue
		}
		bv := domain.BookingView{Booking: b}
		if p, ok := m.packages[b.PackageID]; ok {
			bv.Package = &domain.PackageSnapshot{ID: p.ID, Name: p.Name, DurationDays: p.DurationDays, Price: p.Price}
		} else {
			bv.PackageDeleted = true
		}
		out = append(out, bv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m *memRepo) ListBookingsForUser(ctx context.Context, userID int64) ([]domain.BookingView, error) {
	return m.listBookings(func(b domain.Booking) bool { return b.UserID == userID }), nil
}

func (m *memRepo) ListBookingsForAgency(ctx context.Context, agencyID int64) ([]domain.BookingView, error) {
	return m.listBookings(func(b domain.Booking) bool {
		p, ok := m.packages[b.PackageID]
		return ok && p.AgencyID == agencyID
	}), nil
}

// ---- ReviewRepository ----

func (m *memRepo) CreateReview(ctx context.Context, rv *domain.Review) error {
	rv.ID = m.id()
	rv.CreatedAt = time.Now().UTC()
	rv.UpdatedAt = rv.CreatedAt
	m.reviews[rv.ID] = *rv
	return nil
}

func (m *memRepo) GetReview(ctx context.Context, id int64) (domain.Review, error) {
	rv, ok := m.reviews[id]
	if !ok {
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, nil
}

func (m *memRepo) UpdateReview(ctx context.Context, id int64, rating int, comment string) error {
	rv, ok := m.reviews[id]
	if !ok {
		return domain.ErrNotFound
	}
	rv.Rating = rating
	rv.Comment = comment
	m.reviews[id] = rv
	return nil
}

func (m *memRepo) DeleteReview(ctx context.Context, id int64) error {
	if _, ok := m.reviews[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.reviews, id)
	return nil
}

func (m *memRepo) ListReviews(ctx context.Context, target domain.ReviewTarget, targetID int64, limit int) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range m.reviews {
		if rv.TargetType == target && rv.TargetID == targetID {
			out = append(out, rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo) ReviewExists(ctx context.Context, authorID int64, target domain.ReviewTarget, targetID int64) (bool, error) {
	for _, rv := range m.reviews {
		if rv.AuthorID == authorID && rv.TargetType == target && rv.TargetID == targetID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) RatingSummary(ctx context.Context, target domain.ReviewTarget, targetID int64) (domain.RatingSummary, error) {
	var sum domain.RatingSummary
	total := 0
	for _, rv := range m.reviews {
		if rv.TargetType == target && rv.TargetID == targetID {
			sum.Count++
			total += rv.Rating
		}
	}
	if sum.Count > 0 {
		sum.Average = float64(total) / float64(sum.Count)
	}
	return sum, nil
}

// ---- PlaceRepository ----

func (m *memRepo) CreatePlace(ctx context.Context, p *domain.Place) error {
	p.ID = m.id()
	p.CreatedAt = time.Now().UTC()
	m.places[p.ID] = *p
	return nil
}

func (m *memRepo) GetPlace(ctx context.Context, id int64) (domain.Place, error) {
	p, ok := m.places[id]
	if !ok {
		return domain.Place{}, domain.ErrNotFound
	}
	return p, nil
}

func (m *memRepo) UpdatePlace(ctx context.Context, p *domain.Place) error {
	if _, ok := m.places[p.ID]; !ok {
		return domain.ErrNotFound
	}
	m.places[p.ID] = *p
	return nil
}

func (m *memRepo) DeletePlace(ctx context.Context, id int64) error {
	if _, ok := m.places[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.places, id)
	return nil
}

func (m *memRepo) ListPlaces(ctx context.Context, limit int) ([]domain.Place, error) {
	var out []domain.Place
	for _, p := range m.places {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) CreateHotel(ctx context.Context, h *domain.Hotel) error {
	h.ID = m.id()
	m.hotels[h.ID] = *h
	return nil
}

func (m *memRepo) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	h, ok := m.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}

func (m *memRepo) UpdateHotel(ctx context.Context, h *domain.Hotel) error {
	if _, ok := m.hotels[h.ID]; !ok {
		return domain.ErrNotFound
	}
	m.hotels[h.ID] = *h
	return nil
}

func (m *memRepo) DeleteHotel(ctx context.Context, id int64) error {
	if _, ok := m.hotels[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.hotels, id)
	return nil
}

func (m *memRepo) ListHotelsByPlace(ctx context.Context, placeID int64) ([]domain.Hotel, error) {
	var out []domain.Hotel
	for _, h := range m.hotels {
		if h.PlaceID == placeID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---- RecommendationRepository ----

func (m *memRepo) CreateRecommendation(ctx context.Context, rec *domain.Recommendation) error {
	rec.ID = m.id()
	rec.CreatedAt = time.Now().UTC()
	m.recs[rec.ID] = *rec
	return nil
}

func (m *memRepo) GetRecommendation(ctx context.Context, id int64) (domain.Recommendation, error) {
	rec, ok := m.recs[id]
	if !ok {
		return domain.Recommendation{}, domain.ErrNotFound
	}
	return rec, nil
}

func (m *memRepo) UpdateRecommendationStatus(ctx context.Context, id int64, status domain.RecommendationStatus) error {
	rec, ok := m.recs[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Status = status
	m.recs[id] = rec
	return nil
}

func (m *memRepo) ListRecommendations(ctx context.Context) ([]domain.Recommendation, error) {
	var out []domain.Recommendation
	for _, rec := range m.recs {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) ListRecommendationsForUser(ctx context.Context, userID int64) ([]domain.Recommendation, error) {
	var out []domain.Recommendation
	for _, rec := range m.recs {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---- PlannerRepository ----

func (m *memRepo) CreateJourney(ctx context.Context, j *domain.Journey) error {
	j.ID = m.id()
	j.CreatedAt = time.Now().UTC()
	m.journeys[j.ID] = *j
	return nil
}

func (m *memRepo) GetJourney(ctx context.Context, id int64) (domain.Journey, error) {
	j, ok := m.journeys[id]
	if !ok {
		return domain.Journey{}, domain.ErrNotFound
	}
	return j, nil
}

func (m *memRepo) UpdateJourney(ctx context.Context, j *domain.Journey) error {
	if _, ok := m.journeys[j.ID]; !ok {
		return domain.ErrNotFound
	}
	m.journeys[j.ID] = *j
	return nil
}

func (m *memRepo) DeleteJourney(ctx context.Context, id int64) error {
	if _, ok := m.journeys[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.journeys, id)
	return nil
}

func (m *memRepo) ListJourneysForUser(ctx context.Context, userID int64) ([]domain.Journey, error) {
	var out []domain.Journey
	for _, j := range m.journeys {
		if j.UserID == userID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) CreateNote(ctx context.Context, n *domain.Note) error {
	n.ID = m.id()
	n.CreatedAt = time.Now().UTC()
	n.UpdatedAt = n.CreatedAt
	m.notes[n.ID] = *n
	return nil
}

func (m *memRepo) GetNote(ctx context.Context, id int64) (domain.Note, error) {
	n, ok := m.notes[id]
	if !ok {
		return domain.Note{}, domain.ErrNotFound
	}
	return n, nil
}

func (m *memRepo) UpdateNote(ctx context.Context, n *domain.Note) error {
	if _, ok := m.notes[n.ID]; !ok {
		return domain.ErrNotFound
	}
	m.notes[n.ID] = *n
	return nil
}

func (m *memRepo) DeleteNote(ctx context.Context, id int64) error {
	if _, ok := m.notes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.notes, id)
	return nil
}

func (m *memRepo) ListNotesForUser(ctx context.Context, userID int64) ([]domain.Note, error) {
	var out []domain.Note
	for _, n := range m.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) CreateSavedPlace(ctx context.Context, sp *domain.SavedPlace) error {
	sp.ID = m.id()
	sp.CreatedAt = time.Now().UTC()
	if p, ok := m.places[sp.PlaceID]; ok {
		sp.PlaceName = p.Name
	}
	m.saved[sp.ID] = *sp
	return nil
}

func (m *memRepo) DeleteSavedPlace(ctx context.Context, id int64) error {
	if _, ok := m.saved[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.saved, id)
	return nil
}

func (m *memRepo) GetSavedPlace(ctx context.Context, id int64) (domain.SavedPlace, error) {
	sp, ok := m.saved[id]
	if !ok {
		return domain.SavedPlace{}, domain.ErrNotFound
	}
	return sp, nil
}

func (m *memRepo) SavedPlaceExists(ctx context.Context, userID, placeID int64) (bool, error) {
	for _, sp := range m.saved {
		if sp.UserID == userID && sp.PlaceID == placeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) ListSavedPlacesForUser(ctx context.Context, userID int64) ([]domain.SavedPlace, error) {
	var out []domain.SavedPlace
	for _, sp := range m.saved {
		if sp.UserID == userID {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---- BlogRepository ----

func (m *memRepo) CreateBlog(ctx context.Context, b *domain.Blog) error {
	b.ID = m.id()
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	m.blogs[b.ID] = *b
	return nil
}

func (m *memRepo) GetBlog(ctx context.Context, id int64) (domain.Blog, error) {
	b, ok := m.blogs[id]
	if !ok {
		return domain.Blog{}, domain.ErrNotFound
	}
	return b, nil
}

func (m *memRepo) UpdateBlog(ctx context.Context, b *domain.Blog) error {
	if _, ok := m.blogs[b.ID]; !ok {
		return domain.ErrNotFound
	}
	m.blogs[b.ID] = *b
	return nil
}

func (m *memRepo) DeleteBlog(ctx context.Context, id int64) error {
	if _, ok := m.blogs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.blogs, id)
	return nil
}

func (m *memRepo) ListBlogs(ctx context.Context, limit int) ([]domain.Blog, error) {
	var out []domain.Blog
	for _, b := range m.blogs {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ---- Cache ----

type fakeCache struct {
	store map[string][]byte
	sets  int
	dels  int
}

func newFakeCache() *fakeCache { return &fakeCache{store: map[string][]byte{}} }

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	c.sets++
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels++
	return nil
}
