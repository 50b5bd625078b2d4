package checkout

import (
	"context"
	"errors"
	"github.com/ariefcatur/go-storefront/internal/cart"
	"github.com/ariefcatur/go-storefront/internal/orders"
	"github.com/shopspring/decimal"
	"time"
)

var (
	ErrEmptyCart = errors.New("cart is empty")

	// TaxRate applies to the subtotal; shipping is free.
	TaxRate = decimal.RequireFromString("0.10")
)

type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

func QuoteFor(items []cart.Item) Quote {
	sub := cart.Subtotal(items).Round(2)
	tax := sub.Mul(TaxRate).Round(2)
	return Quote{
		Subtotal: sub,
		Shipping: decimal.Zero,
		Tax:      tax,
		Total:    sub.Add(tax),
	}
}

type Cart interface {
	Items() []cart.Item
	RemoveOrdered(ctx context.Context, ordered []cart.Item) error
}

type OrderAdder interface {
	AddOrder(ctx context.Context, in orders.NewOrder) (orders.Order, error)
}

// Service turns the current cart into an order.
type Service struct {
	Cart   Cart
	Orders OrderAdder
	Delay  time.Duration // simulated submit latency
}

// PlaceOrder validates the form, waits for the submit delay, records an order
// from a snapshot of the cart and takes the ordered lines out of the cart.
func (s *Service) PlaceOrder(ctx context.Context, f Form) (orders.Order, error) {
	items := s.Cart.Items()
	if len(items) == 0 {
		return orders.Order{}, ErrEmptyCart
	}
	if err := f.Validate(); err != nil {
		return orders.Order{}, err
	}

	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return orders.Order{}, ctx.Err()
		case <-t.C:
		}
	}

	q := QuoteFor(items)
	lines := make([]orders.LineItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, orders.LineItem{ID: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity, Image: it.Image})
	}
	o, err := s.Orders.AddOrder(ctx, orders.NewOrder{
		CustomerDetails: f.Customer(),
		OrderItems:      lines,
		Subtotal:        q.Subtotal.InexactFloat64(),
		Shipping:        q.Shipping.InexactFloat64(),
		Tax:             q.Tax.InexactFloat64(),
		Total:           q.Total.InexactFloat64(),
	})
	if err != nil {
		return orders.Order{}, err
	}
	if err := s.Cart.RemoveOrdered(ctx, items); err != nil {
		return o, err
	}
	return o, nil
}
