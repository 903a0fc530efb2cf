package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"tripmate/internal/adapters/observability"
	"tripmate/internal/app"
	"tripmate/internal/domain"
)

type createBookingRequest struct {
	PackageID   int64  `json:"packageId"`
	Travellers  int    `json:"numberOfTravellers"`
	TravelDate  string `json:"travelDate"` // YYYY-MM-DD
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	travelDate, err := time.Parse("2006-01-02", req.TravelDate)
	if err != nil {
		writeError(w, fmt.Errorf("travelDate must be YYYY-MM-DD: %w", domain.ErrValidation))
		return
	}
	b, err := h.Bookings.Create(r.Context(), identity(r).UserID, app.CreateBookingInput{
		PackageID:  req.PackageID,
		Travellers: req.Travellers,
		TravelDate: travelDate,
		Address:    req.Address,
		Phone:      req.PhoneNumber,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	observability.ObserveBookingCreated(string(b.Status))
	writeData(w, http.StatusCreated, b)
}

func (h *Handlers) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid booking id: %w", err))
		return
	}
	var req struct {
		Action string `json:"action"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	action, err := domain.ParseBookingAction(req.Action)
	if err != nil {
		writeError(w, fmt.Errorf("action must be confirm or cancel: %w", err))
		return
	}
	b, err := h.Bookings.UpdateStatus(r.Context(), identity(r).Actor(), id, action)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, b)
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid booking id: %w", err))
		return
	}
	if err := h.Bookings.Delete(r.Context(), identity(r).Actor(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (h *Handlers) listMyBookings(w http.ResponseWriter, r *http.Request) {
	out, err := h.Bookings.ListForUser(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.BookingView{}
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handlers) listAgencyBookings(w http.ResponseWriter, r *http.Request) {
	id := identity(r)
	if id.Role != domain.RoleAgency && id.Role != domain.RoleAdmin {
		writeError(w, fmt.Errorf("agency bookings are agency-only: %w", domain.ErrForbidden))
		return
	}
	out, err := h.Bookings.ListForAgency(r.Context(), id.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.BookingView{}
	}
	writeData(w, http.StatusOK, out)
}
