package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"tripmate/internal/app"
	"tripmate/internal/domain"
)

type packageRequest struct {
	Name         string                `json:"name"`
	Description  *string               `json:"description"`
	Price        float64               `json:"price"`
	DurationDays int                   `json:"durationDays"`
	Highlights   []string              `json:"highlights"`
	Itinerary    []domain.ItineraryDay `json:"itinerary"`
	Policy       *domain.PackagePolicy `json:"policy"`
}

func (req *packageRequest) input() app.PackageInput {
	return app.PackageInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Highlights:   req.Highlights,
		Itinerary:    req.Itinerary,
		Policy:       req.Policy,
	}
}

func (h *Handlers) createPackage(w http.ResponseWriter, r *http.Request) {
	var req packageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := h.Packages.Create(r.Context(), identity(r).Actor(), req.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, p)
}

func (h *Handlers) updatePackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid package id: %w", err))
		return
	}
	var req packageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := h.Packages.Update(r.Context(), identity(r).Actor(), id, req.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, p)
}

func (h *Handlers) deletePackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid package id: %w", err))
		return
	}
	if err := h.Packages.Delete(r.Context(), identity(r).Actor(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (h *Handlers) getPackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid package id: %w", err))
		return
	}
	p, err := h.Packages.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, p)
}

func (h *Handlers) listPackages(w http.ResponseWriter, r *http.Request) {
	q := domain.PackagesQuery{}
	if s := r.URL.Query().Get("q"); s != "" {
		q.Q = &s
	}
	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	out, err := h.Packages.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.TravelPackage{}
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handlers) listAgencyPackages(w http.ResponseWriter, r *http.Request) {
	id := identity(r)
	if id.Role != domain.RoleAgency && id.Role != domain.RoleAdmin {
		writeError(w, fmt.Errorf("agency packages are agency-only: %w", domain.ErrForbidden))
		return
	}
	out, err := h.Packages.ListForAgency(r.Context(), id.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.TravelPackage{}
	}
	writeData(w, http.StatusOK, out)
}
