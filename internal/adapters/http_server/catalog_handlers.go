package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"tripmate/internal/app"
	"tripmate/internal/domain"
)

type placeRequest struct {
	Name        string             `json:"name"`
	Country     string             `json:"country"`
	City        *string            `json:"city"`
	Description *string            `json:"description"`
	CoverImage  *string            `json:"coverImage"`
	Attractions []domain.PlaceItem `json:"attractions"`
	ThingsToDo  []domain.PlaceItem `json:"thingsToDo"`
	Culture     []domain.PlaceItem `json:"localCulture"`
	Cuisine     []domain.PlaceItem `json:"cuisine"`
}

func (req *placeRequest) input() app.PlaceInput {
	return app.PlaceInput{
		Name:        req.Name,
		Country:     req.Country,
		City:        req.City,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		Attractions: req.Attractions,
		ThingsToDo:  req.ThingsToDo,
		Culture:     req.Culture,
		Cuisine:     req.Cuisine,
	}
}

func (h *Handlers) createPlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := h.Catalog.CreatePlace(r.Context(), identity(r).Actor(), req.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, p)
}

func (h *Handlers) updatePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid place id: %w", err))
		return
	}
	var req placeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := h.Catalog.UpdatePlace(r.Context(), identity(r).Actor(), id, req.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, p)
}

func (h *Handlers) deletePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid place id: %w", err))
		return
	}
	if err := h.Catalog.DeletePlace(r.Context(), identity(r).Actor(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (h *Handlers) getPlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid place id: %w", err))
		return
	}
	p, err := h.Catalog.GetPlace(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, p)
}

func (h *Handlers) listPlaces(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	out, err := h.Catalog.ListPlaces(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Place{}
	}
	writeData(w, http.StatusOK, out)
}

type hotelRequest struct {
	Name          string   `json:"name"`
	Address       *string  `json:"address"`
	PricePerNight *float64 `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

func (req *hotelRequest) input() app.HotelInput {
	return app.HotelInput{
		Name:          req.Name,
		Address:       req.Address,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
		Images:        req.Images,
	}
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	placeID, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid place id: %w", err))
		return
	}
	var req hotelRequest
	if !decodeBody(w, r, &req) {
		return
	}
	hh, err := h.Catalog.CreateHotel(r.Context(), identity(r).Actor(), placeID, req.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, hh)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid hotel id: %w", err))
		return
	}
	var req hotelRequest
	if !decodeBody(w, r, &req) {
		return
	}
	hh, err := h.Catalog.UpdateHotel(r.Context(), identity(r).Actor(), id, req.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, hh)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid hotel id: %w", err))
		return
	}
	if err := h.Catalog.DeleteHotel(r.Context(), identity(r).Actor(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid hotel id: %w", err))
		return
	}
	hh, err := h.Catalog.GetHotel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, hh)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	placeID, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid place id: %w", err))
		return
	}
	out, err := h.Catalog.ListHotels(r.Context(), placeID)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Hotel{}
	}
	writeData(w, http.StatusOK, out)
}
