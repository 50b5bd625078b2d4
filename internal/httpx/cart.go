package httpx

import (
	"github.com/ariefcatur/go-storefront/internal/checkout"
	"github.com/go-chi/chi/v5"
	"net/http"
)

func (h *Handler) cartView(w http.ResponseWriter, code int) {
	c := h.Store.Cart()
	items := c.Items()
	writeJSON(w, code, map[string]any{
		"items": items,
		"count": c.Count(),
		"total": c.Total(),
		"quote": checkout.QuoteFor(items),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.cartView(w, http.StatusOK)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	p, ok := h.product(w, r)
	if !ok {
		return
	}
	if err := h.Store.Cart().AddToCart(r.Context(), p); err != nil {
		fail(w, err)
		return
	}
	h.cartView(w, http.StatusCreated)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := h.Store.Cart().UpdateQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity); err != nil {
		fail(w, err)
		return
	}
	h.cartView(w, http.StatusOK)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Cart().RemoveFromCart(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	h.cartView(w, http.StatusOK)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Cart().ClearCart(r.Context()); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
