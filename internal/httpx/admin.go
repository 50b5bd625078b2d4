package httpx

import (
	"github.com/ariefcatur/go-storefront/internal/catalog"
	"github.com/ariefcatur/go-storefront/internal/customers"
	"github.com/ariefcatur/go-storefront/internal/orders"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"log"
	"net/http"
	"time"
)

const recentOrdersLimit = 5

// adminOrder is an order row as the admin tables show it.
type adminOrder struct {
	orders.Order
	CustomerName string `json:"customerName"`
	ItemCount    int    `json:"itemCount"`
	TotalLabel   string `json:"totalLabel"`
	Closed       bool   `json:"closed"`
}

func adminOrders(list []orders.Order) []adminOrder {
	out := make([]adminOrder, 0, len(list))
	for _, o := range list {
		out = append(out, adminOrder{
			Order:        o,
			CustomerName: o.CustomerName(),
			ItemCount:    o.ItemCount(),
			TotalLabel:   catalog.FormatPrice(decimal.NewFromFloat(o.Total)),
			Closed:       o.Status.IsTerminal(),
		})
	}
	return out
}

func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.Store.Auth().IsAdmin() {
			writeError(w, http.StatusForbidden, "admin login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	st := h.Store.Orders()
	writeJSON(w, http.StatusOK, map[string]any{
		"totalSales":     st.TotalSales().StringFixed(2),
		"totalOrders":    st.Count(),
		"totalCustomers": len(h.Store.Customers()),
		"statusCounts":   st.StatusCounts(),
		"recentOrders":   adminOrders(st.RecentOrders(recentOrdersLimit)),
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, adminOrders(h.Store.Orders().ByStatus(r.URL.Query().Get("status"))))
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status orders.Status `json:"status"`
	}
	if !decode(w, r, &req) {
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}
	id := chi.URLParam(r, "id")
	st := h.Store.Orders()
	prev, err := st.UpdateOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		fail(w, err)
		return
	}
	o, err := st.OrderByID(id)
	if err != nil {
		fail(w, err)
		return
	}
	if prev != req.Status {
		h.publish(r, orders.EventOrderStatusChanged, id, orders.OrderStatusChangedPayload{
			OrderID: id, From: prev, To: req.Status, Total: o.Total,
		})
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.Store.Orders().DeleteOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err)
		return
	}
	h.publish(r, orders.EventOrderDeleted, o.ID, orders.OrderDeletedPayload{
		OrderID: o.ID, Status: o.Status, Total: o.Total,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, customers.Filter(h.Store.Customers(), q.Get("search"), q.Get("role")))
}

// dailyDigest reads the consumer-built summary; ?day=YYYY-MM-DD, default today.
func (h *Handler) dailyDigest(w http.ResponseWriter, r *http.Request) {
	if h.Digest == nil {
		writeError(w, http.StatusNotFound, "digest disabled")
		return
	}
	day := time.Now()
	if v := r.URL.Query().Get("day"); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "day must be YYYY-MM-DD")
			return
		}
		day = d
	}
	sum, err := h.Digest.Day(r.Context(), day)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// reset is the "reset and retry" escape hatch: every persisted key goes.
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		fail(w, err)
		return
	}
	log.Printf("storefront reset")
	w.WriteHeader(http.StatusNoContent)
}
