package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"weddingdir/internal/reviews"
)

// handleListReviews serves GET /api/vendors/{id}/reviews.
func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reviews.List(r.PathValue("id")))
}

// handleAddReview serves POST /api/vendors/{id}/reviews. The store is
// permissive; bounds are enforced here so the public API stays sane.
func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	var review reviews.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	if review.Rating < 1 || review.Rating > 5 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "rating must be between 1 and 5"})
		return
	}
	if strings.TrimSpace(review.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "review text is required"})
		return
	}

	stored := s.reviews.Add(r.PathValue("id"), review)
	writeJSON(w, http.StatusCreated, stored)
}
