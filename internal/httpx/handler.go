package httpx

import (
	"context"
	"github.com/ariefcatur/go-storefront/internal/digest"
	kafkax "github.com/ariefcatur/go-storefront/internal/kafka"
	"github.com/ariefcatur/go-storefront/internal/orders"
	"github.com/ariefcatur/go-storefront/internal/storefront"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	kafkago "github.com/segmentio/kafka-go"
	"log"
	"net/http"
	"time"
)

// Publisher is satisfied by *kafka.Producer.
type Publisher interface {
	Publish(topic string, key, value []byte, headers ...kafkago.Header)
}

// DigestReader is satisfied by *digest.Service.
type DigestReader interface {
	Day(ctx context.Context, day time.Time) (digest.Summary, error)
}

type Handler struct {
	Store   *storefront.Provider
	Events  Publisher    // nil disables order events
	Digest  DigestReader // nil disables /admin/digest
	Service string
}

func (h *Handler) Register(r *chi.Mux) {
	r.Get("/products", h.listProducts)
	r.Get("/products/categories", h.listCategories)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/products/{id}/reviews", h.listReviews)
	r.Post("/products/{id}/reviews", h.addReview)

	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addToCart)
	r.Patch("/cart/items/{id}", h.updateCartItem)
	r.Delete("/cart/items/{id}", h.removeFromCart)
	r.Delete("/cart", h.clearCart)

	r.Get("/wishlist", h.getWishlist)
	r.Post("/wishlist/items", h.addToWishlist)
	r.Post("/wishlist/toggle", h.toggleWishlist)
	r.Get("/wishlist/items/{id}", h.inWishlist)
	r.Delete("/wishlist/items/{id}", h.removeFromWishlist)
	r.Delete("/wishlist", h.clearWishlist)

	r.Get("/checkout/quote", h.quote)
	r.Post("/checkout", h.placeOrder)
	r.Get("/orders/mine", h.myOrders)
	r.Get("/orders/{id}", h.getOrder)

	r.Post("/auth/register", h.register)
	r.Post("/auth/login", h.login)
	r.Post("/auth/logout", h.logout)
	r.Get("/auth/me", h.me)
	r.Patch("/auth/profile", h.updateProfile)

	r.Route("/admin", func(ar chi.Router) {
		ar.Use(h.requireAdmin)
		ar.Get("/dashboard", h.dashboard)
		ar.Get("/orders", h.listOrders)
		ar.Patch("/orders/{id}/status", h.updateOrderStatus)
		ar.Delete("/orders/{id}", h.deleteOrder)
		ar.Get("/customers", h.listCustomers)
		ar.Get("/digest", h.dailyDigest)
		ar.Delete("/reviews/{id}", h.deleteReview)
		ar.Post("/reset", h.reset)
	})
}

// publish wraps payload in an envelope and hands it to the producer.
func (h *Handler) publish(r *http.Request, eventType, orderID string, payload any) {
	if h.Events == nil {
		return
	}
	env, err := orders.NewEnvelope(eventType, h.Service, orderID, middleware.GetReqID(r.Context()), payload)
	if err != nil {
		log.Printf("event %s: %v", eventType, err)
		return
	}
	h.Events.Publish(orders.Topic(eventType), orders.PartitionKey(orderID), kafkax.MustMarshal(env),
		kafkax.EventHeaders(eventType, env.EventVersion)...)
}
