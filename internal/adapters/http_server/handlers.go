package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripmate/internal/adapters/auth"
	"tripmate/internal/adapters/uploads"
	"tripmate/internal/app"
)

type Handlers struct {
	Bookings   *app.BookingService
	Reviews    *app.ReviewService
	Packages   *app.PackageService
	Catalog    *app.CatalogService
	Moderation *app.ModerationService
	Planner    *app.PlannerService
	Blogs      *app.BlogService
	Uploads    *uploads.Store
	Auth       *auth.Verifier
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.mux.Route("/api", func(r chi.Router) {
		r.Use(h.Auth.Middleware)

		// public reads
		r.Get("/packages", h.listPackages)
		r.Get("/packages/{id}", h.getPackage)
		r.Get("/places", h.listPlaces)
		r.Get("/places/{id}", h.getPlace)
		r.Get("/places/{id}/hotels", h.listHotels)
		r.Get("/hotels/{id}", h.getHotel)
		r.Get("/reviews", h.listReviews)
		r.Get("/reviews/aggregate", h.reviewAggregate)
		r.Get("/blogs", h.listBlogs)
		r.Get("/blogs/{id}", h.getBlog)

		// authenticated
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth)

			r.Post("/bookings", h.createBooking)
			r.Put("/bookings/{id}/status", h.updateBookingStatus)
			r.Delete("/bookings/{id}", h.deleteBooking)
			r.Get("/bookings/my-bookings", h.listMyBookings)
			r.Get("/bookings/agency", h.listAgencyBookings)

			r.Post("/reviews", h.submitReview)
			r.Patch("/reviews/{id}", h.updateReview)
			r.Delete("/reviews/{id}", h.deleteReview)

			r.Post("/packages", h.createPackage)
			r.Put("/packages/{id}", h.updatePackage)
			r.Delete("/packages/{id}", h.deletePackage)
			r.Get("/packages/agency", h.listAgencyPackages)

			r.Post("/places", h.createPlace)
			r.Put("/places/{id}", h.updatePlace)
			r.Delete("/places/{id}", h.deletePlace)
			r.Post("/places/{id}/hotels", h.createHotel)
			r.Put("/hotels/{id}", h.updateHotel)
			r.Delete("/hotels/{id}", h.deleteHotel)

			r.Post("/recommendations", h.submitRecommendation)
			r.Get("/recommendations", h.listRecommendations)
			r.Put("/recommendations/{id}/status", h.moderateRecommendation)

			r.Post("/journeys", h.createJourney)
			r.Get("/journeys", h.listJourneys)
			r.Put("/journeys/{id}", h.updateJourney)
			r.Delete("/journeys/{id}", h.deleteJourney)

			r.Post("/notes", h.createNote)
			r.Get("/notes", h.listNotes)
			r.Put("/notes/{id}", h.updateNote)
			r.Delete("/notes/{id}", h.deleteNote)

			r.Post("/saved-places", h.savePlace)
			r.Get("/saved-places", h.listSavedPlaces)
			r.Delete("/saved-places/{id}", h.unsavePlace)

			r.Post("/blogs", h.createBlog)
			r.Put("/blogs/{id}", h.updateBlog)
			r.Delete("/blogs/{id}", h.deleteBlog)

			r.Post("/uploads", h.upload)
		})
	})
}

// identity is safe after RequireAuth; the zero Identity only appears on
// routes that treat anonymous callers as public.
func identity(r *http.Request) auth.Identity {
	id, _ := auth.FromContext(r.Context())
	return id
}
