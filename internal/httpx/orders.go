package httpx

import (
	"github.com/ariefcatur/go-storefront/internal/checkout"
	"github.com/ariefcatur/go-storefront/internal/orders"
	"github.com/go-chi/chi/v5"
	"log"
	"net/http"
)

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, checkout.QuoteFor(h.Store.Cart().Items()))
}

// placeOrder turns the cart into an order and announces it.
func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if !decode(w, r, &form) {
		return
	}
	o, err := h.Store.Checkout().PlaceOrder(r.Context(), form)
	if err != nil {
		fail(w, err)
		return
	}
	h.publish(r, orders.EventOrderPlaced, o.ID, orders.PlacedPayload(o))
	log.Printf("order placed: %s total=%.2f", o.ID, o.Total)
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	u, ok := h.Store.Auth().CurrentUser()
	if !ok {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.Orders().ByCustomerEmail(u.Email))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.Store.Orders().OrderByID(chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}
