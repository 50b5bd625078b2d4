package httpx

import (
	"github.com/ariefcatur/go-storefront/internal/reviews"
	"github.com/go-chi/chi/v5"
	"net/http"
	"strings"
)

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rs := h.Store.Reviews()
	writeJSON(w, http.StatusOK, map[string]any{
		"reviews":       rs.ReviewsByProduct(id),
		"averageRating": rs.AverageRating(id),
	})
}

// addReview requires a signed-in user; the reviewer identity comes from the
// session, not the body.
func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	u, ok := h.Store.Auth().CurrentUser()
	if !ok {
		writeError(w, http.StatusUnauthorized, "please login to write a review")
		return
	}
	id := chi.URLParam(r, "id")
	if _, err := h.Store.Catalog().ProductByID(r.Context(), id); err != nil {
		fail(w, err)
		return
	}
	var sub reviews.Submission
	if !decode(w, r, &sub) {
		return
	}
	if err := sub.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	sub.UserID = u.ID
	sub.UserName = strings.TrimSpace(u.FirstName + " " + u.LastName)

	rev, err := h.Store.Reviews().AddReview(r.Context(), id, sub)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rev)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reviews().DeleteReview(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
