package httpx

import (
	"github.com/ariefcatur/go-storefront/internal/catalog"
	"github.com/go-chi/chi/v5"
	"net/http"
	"strconv"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.Catalog().ListProducts(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	writeJSON(w, http.StatusOK, catalog.Apply(products, catalog.Query{
		Category: r.URL.Query().Get("category"),
		Sort:     r.URL.Query().Get("sort"),
		Page:     page,
	}))
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.Catalog().ListProducts(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	type category struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	out := []category{}
	for _, c := range catalog.Categories(products) {
		out = append(out, category{Name: c, Slug: catalog.Slug(c)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Store.Catalog().ProductByID(r.Context(), id)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"product":       p,
		"averageRating": h.Store.Reviews().AverageRating(id),
		"inWishlist":    h.Store.Wishlist().IsInWishlist(id),
	})
}

// product resolves a body's productId against the catalog.
func (h *Handler) product(w http.ResponseWriter, r *http.Request) (catalog.Product, bool) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if !decode(w, r, &req) {
		return catalog.Product{}, false
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId required")
		return catalog.Product{}, false
	}
	p, err := h.Store.Catalog().ProductByID(r.Context(), req.ProductID)
	if err != nil {
		fail(w, err)
		return catalog.Product{}, false
	}
	return p, true
}
