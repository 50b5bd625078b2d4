// Package storefront wires every store to one backend. It is built once at
// startup and passed to consumers; nothing here is a package-level global.
package storefront

import (
	"context"
	"fmt"
	"github.com/ariefcatur/go-storefront/internal/auth"
	"github.com/ariefcatur/go-storefront/internal/cart"
	"github.com/ariefcatur/go-storefront/internal/catalog"
	"github.com/ariefcatur/go-storefront/internal/checkout"
	"github.com/ariefcatur/go-storefront/internal/customers"
	"github.com/ariefcatur/go-storefront/internal/kv"
	"github.com/ariefcatur/go-storefront/internal/orders"
	"github.com/ariefcatur/go-storefront/internal/reviews"
	"github.com/ariefcatur/go-storefront/internal/wishlist"
	"sync"
	"time"
)

type Options struct {
	LoginDelay    time.Duration
	CheckoutDelay time.Duration
	PersistCart   bool
}

type stores struct {
	cart     *cart.Store
	wishlist *wishlist.Store
	reviews  *reviews.Store
	orders   *orders.Store
	auth     *auth.Store
	checkout *checkout.Service
}

type Provider struct {
	backend kv.Backend
	catalog catalog.Source
	opts    Options

	mu sync.RWMutex
	s  stores
}

func New(ctx context.Context, b kv.Backend, src catalog.Source, opts Options) (*Provider, error) {
	p := &Provider{backend: b, catalog: src, opts: opts}
	s, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	p.s = s
	return p, nil
}

func (p *Provider) load(ctx context.Context) (stores, error) {
	var (
		s   stores
		err error
	)
	var cartBackend kv.Backend
	if p.opts.PersistCart {
		cartBackend = p.backend
	}
	if s.cart, err = cart.New(ctx, cartBackend); err != nil {
		return s, fmt.Errorf("cart: %w", err)
	}
	if s.wishlist, err = wishlist.New(ctx, p.backend); err != nil {
		return s, fmt.Errorf("wishlist: %w", err)
	}
	if s.reviews, err = reviews.New(ctx, p.backend); err != nil {
		return s, fmt.Errorf("reviews: %w", err)
	}
	if s.orders, err = orders.New(ctx, p.backend); err != nil {
		return s, fmt.Errorf("orders: %w", err)
	}
	if s.auth, err = auth.New(ctx, p.backend, p.opts.LoginDelay); err != nil {
		return s, fmt.Errorf("auth: %w", err)
	}
	s.checkout = &checkout.Service{Cart: s.cart, Orders: s.orders, Delay: p.opts.CheckoutDelay}
	return s, nil
}

// Reset wipes every persisted key and starts over with empty stores.
func (p *Provider) Reset(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := kv.Purge(ctx, p.backend); err != nil {
		return err
	}
	s, err := p.load(ctx)
	if err != nil {
		return err
	}
	p.s = s
	return nil
}

func (p *Provider) Catalog() catalog.Source { return p.catalog }

func (p *Provider) Cart() *cart.Store {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s.cart
}

func (p *Provider) Wishlist() *wishlist.Store {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s.wishlist
}

func (p *Provider) Reviews() *reviews.Store {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s.reviews
}

func (p *Provider) Orders() *orders.Store {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s.orders
}

func (p *Provider) Auth() *auth.Store {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s.auth
}

func (p *Provider) Checkout() *checkout.Service {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s.checkout
}

// Customers joins the registered user with order customers.
func (p *Provider) Customers() []customers.Customer {
	p.mu.RLock()
	a, o := p.s.auth, p.s.orders
	p.mu.RUnlock()

	var reg *auth.User
	if u, ok := a.RegisteredUser(); ok {
		reg = &u
	}
	return customers.Directory(reg, o.Orders())
}
