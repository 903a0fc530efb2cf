package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"tripmate/internal/domain"
)

type reviewRequest struct {
	Type    string `json:"type"`
	ID      int64  `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handlers) submitReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	target, err := domain.ParseReviewTarget(req.Type)
	if err != nil {
		writeError(w, err)
		return
	}
	rv, err := h.Reviews.Submit(r.Context(), identity(r).UserID, target, req.ID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeKeyed(w, http.StatusCreated, "review", rv)
}

func (h *Handlers) updateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid review id: %w", err))
		return
	}
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	rv, err := h.Reviews.Update(r.Context(), identity(r).Actor(), id, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeKeyed(w, http.StatusOK, "review", rv)
}

func (h *Handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, fmt.Errorf("invalid review id: %w", err))
		return
	}
	if err := h.Reviews.Delete(r.Context(), identity(r).Actor(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func reviewTargetQuery(r *http.Request) (domain.ReviewTarget, int64, error) {
	target, err := domain.ParseReviewTarget(r.URL.Query().Get("type"))
	if err != nil {
		return "", 0, err
	}
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("id must be a positive integer: %w", domain.ErrValidation)
	}
	return target, id, nil
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	target, id, err := reviewTargetQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	out, err := h.Reviews.List(r.Context(), target, id, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Review{}
	}
	writeKeyed(w, http.StatusOK, "reviews", out)
}

func (h *Handlers) reviewAggregate(w http.ResponseWriter, r *http.Request) {
	target, id, err := reviewTargetQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sum, err := h.Reviews.Aggregate(r.Context(), target, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, sum)
}
