package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tripmate/internal/app"
	"tripmate/internal/domain"
)

// ---- recommendations ----

func (h *Handlers) submitRecommendation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name"`
		Country     string  `json:"country"`
		Description *string `json:"description"`
		Image       *string `json:"image"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	rec, err := h.Moderation.Submit(r.Context(), identity(r).UserID, app.RecommendationInput{
		Name: req.Name, Country: req.Country, Description: req.Description, Image: req.Image,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, rec)
}

func (h *Handlers) listRecommendations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Moderation.List(r.Context(), identity(r).Actor())
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Recommendation{}
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handlers) moderateRecommendation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid recommendation id: %w", err))
		return
	}
	var req struct {
		Action string `json:"action"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	rec, err := h.Moderation.Moderate(r.Context(), identity(r).Actor(), id, req.Action)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, rec)
}

// ---- journeys ----

type journeyRequest struct {
	Destination string  `json:"destination"`
	StartDate   *string `json:"startDate"` // YYYY-MM-DD
	Notes       *string `json:"notes"`
}

func (req *journeyRequest) input() (app.JourneyInput, error) {
	in := app.JourneyInput{Destination: req.Destination, Notes: req.Notes}
	if req.StartDate != nil {
		t, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return app.JourneyInput{}, fmt.Errorf("startDate must be YYYY-MM-DD: %w", domain.ErrValidation)
		}
		in.StartDate = &t
	}
	return in, nil
}

func (h *Handlers) createJourney(w http.ResponseWriter, r *http.Request) {
	var req journeyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, err)
		return
	}
	j, err := h.Planner.CreateJourney(r.Context(), identity(r).UserID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, j)
}

func (h *Handlers) updateJourney(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid journey id: %w", err))
		return
	}
	var req journeyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, err)
		return
	}
	j, err := h.Planner.UpdateJourney(r.Context(), identity(r).Actor(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, j)
}

func (h *Handlers) deleteJourney(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid journey id: %w", err))
		return
	}
	if err := h.Planner.DeleteJourney(r.Context(), identity(r).Actor(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (h *Handlers) listJourneys(w http.ResponseWriter, r *http.Request) {
	out, err := h.Planner.ListJourneys(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Journey{}
	}
	writeData(w, http.StatusOK, out)
}

// ---- notes ----

func (h *Handlers) createNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	n, err := h.Planner.CreateNote(r.Context(), identity(r).UserID, app.NoteInput{Title: req.Title, Content: req.Content})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, n)
}

func (h *Handlers) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid note id: %w", err))
		return
	}
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	n, err := h.Planner.UpdateNote(r.Context(), identity(r).Actor(), id, app.NoteInput{Title: req.Title, Content: req.Content})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, n)
}

func (h *Handlers) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid note id: %w", err))
		return
	}
	if err := h.Planner.DeleteNote(r.Context(), identity(r).Actor(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (h *Handlers) listNotes(w http.ResponseWriter, r *http.Request) {
	out, err := h.Planner.ListNotes(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Note{}
	}
	writeData(w, http.StatusOK, out)
}

// ---- saved places ----

func (h *Handlers) savePlace(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlaceID int64 `json:"placeId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	sp, err := h.Planner.SavePlace(r.Context(), identity(r).UserID, req.PlaceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, sp)
}

func (h *Handlers) unsavePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid saved place id: %w", err))
		return
	}
	if err := h.Planner.UnsavePlace(r.Context(), identity(r).Actor(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (h *Handlers) listSavedPlaces(w http.ResponseWriter, r *http.Request) {
	out, err := h.Planner.ListSavedPlaces(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.SavedPlace{}
	}
	writeData(w, http.StatusOK, out)
}

// ---- blogs ----

type blogRequest struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	CoverImage *string `json:"coverImage"`
}

func (h *Handlers) createBlog(w http.ResponseWriter, r *http.Request) {
	var req blogRequest
	if !decodeBody(w, r, &req) {
		return
	}
	b, err := h.Blogs.Create(r.Context(), identity(r).UserID, app.BlogInput{
		Title: req.Title, Content: req.Content, CoverImage: req.CoverImage,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, b)
}

func (h *Handlers) updateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid blog id: %w", err))
		return
	}
	var req blogRequest
	if !decodeBody(w, r, &req) {
		return
	}
	b, err := h.Blogs.Update(r.Context(), identity(r).Actor(), id, app.BlogInput{
		Title: req.Title, Content: req.Content, CoverImage: req.CoverImage,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, b)
}

func (h *Handlers) deleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid blog id: %w", err))
		return
	}
	if err := h.Blogs.Delete(r.Context(), identity(r).Actor(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (h *Handlers) getBlog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid blog id: %w", err))
		return
	}
	b, err := h.Blogs.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, b)
}

func (h *Handlers) listBlogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	out, err := h.Blogs.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Blog{}
	}
	writeData(w, http.StatusOK, out)
}

// ---- uploads ----

func (h *Handlers) upload(w http.ResponseWriter, r *http.Request) {
	// ParseMultipartForm caps the in-memory part; the store enforces the
	// per-file size limit.
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, fmt.Errorf("expected multipart/form-data: %w", domain.ErrValidation))
		return
	}
	_, fh, err := r.FormFile("file")
	if err != nil {
		writeError(w, fmt.Errorf("missing file field: %w", domain.ErrValidation))
		return
	}
	up, err := h.Uploads.Save(fh)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, up)
}
