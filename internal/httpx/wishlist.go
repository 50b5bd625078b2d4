package httpx

import (
	"github.com/go-chi/chi/v5"
	"net/http"
)

func (h *Handler) wishlistView(w http.ResponseWriter, code int) {
	wl := h.Store.Wishlist()
	writeJSON(w, code, map[string]any{"items": wl.Items(), "count": wl.Count()})
}

func (h *Handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	h.wishlistView(w, http.StatusOK)
}

func (h *Handler) addToWishlist(w http.ResponseWriter, r *http.Request) {
	p, ok := h.product(w, r)
	if !ok {
		return
	}
	if err := h.Store.Wishlist().AddToWishlist(r.Context(), p); err != nil {
		fail(w, err)
		return
	}
	h.wishlistView(w, http.StatusCreated)
}

func (h *Handler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	p, ok := h.product(w, r)
	if !ok {
		return
	}
	in, err := h.Store.Wishlist().ToggleWishlist(r.Context(), p)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"productId": p.ID, "inWishlist": in})
}

func (h *Handler) inWishlist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, map[string]any{"productId": id, "inWishlist": h.Store.Wishlist().IsInWishlist(id)})
}

func (h *Handler) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Wishlist().RemoveFromWishlist(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	h.wishlistView(w, http.StatusOK)
}

func (h *Handler) clearWishlist(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Wishlist().ClearWishlist(r.Context()); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
