package cart

import (
	"context"
	"github.com/ariefcatur/go-storefront/internal/catalog"
	"github.com/ariefcatur/go-storefront/internal/kv"
	"github.com/shopspring/decimal"
	"sync"
)

// Item is a product line in the cart. Quantity is always >= 1.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

// LineTotal is price times quantity.
func (it Item) LineTotal() decimal.Decimal {
	return catalog.ParsePrice(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Store holds the active cart. With a nil backend the cart lives in memory only.
type Store struct {
	mu      sync.Mutex
	backend kv.Backend
	items   []Item
}

func New(ctx context.Context, b kv.Backend) (*Store, error) {
	s := &Store{backend: b, items: []Item{}}
	if b == nil {
		return s, nil
	}
	items, err := kv.Load(ctx, b, kv.KeyCart, []Item{})
	if err != nil {
		return nil, err
	}
	s.items = sanitize(items)
	return s, nil
}

// sanitize drops zero-quantity leftovers from older payloads.
func sanitize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Quantity >= 1 {
			out = append(out, it)
		}
	}
	return out
}

// commit persists next and, once stored, makes it the live cart.
func (s *Store) commit(ctx context.Context, next []Item) error {
	if s.backend != nil {
		if err := kv.Save(ctx, s.backend, kv.KeyCart, next); err != nil {
			return err
		}
	}
	s.items = next
	return nil
}

func (s *Store) clone() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) AddToCart(ctx context.Context, p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.clone()
	for i := range next {
		if next[i].ID == p.ID {
			next[i].Quantity++
			return s.commit(ctx, next)
		}
	}
	next = append(next, Item{ID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1, Image: p.Image})
	return s.commit(ctx, next)
}

func (s *Store) RemoveFromCart(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	return s.commit(ctx, next)
}

// UpdateQuantity sets the quantity of id; qty <= 0 removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, id string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if it.ID == id {
			if qty <= 0 {
				continue
			}
			it.Quantity = qty
		}
		next = append(next, it)
	}
	return s.commit(ctx, next)
}

// RemoveOrdered takes the ordered quantities back out of the cart. Units
// added after the snapshot was taken stay in the cart.
func (s *Store) RemoveOrdered(ctx context.Context, ordered []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	taken := make(map[string]int, len(ordered))
	for _, it := range ordered {
		taken[it.ID] += it.Quantity
	}
	next := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		it.Quantity -= taken[it.ID]
		if it.Quantity > 0 {
			next = append(next, it)
		}
	}
	return s.commit(ctx, next)
}

func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, []Item{})
}

// Items returns a snapshot; mutating it never touches the cart.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clone()
}

// Count is the sum of quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Total is the sum of price * quantity.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Subtotal(s.items)
}

// Subtotal sums LineTotal over items.
func Subtotal(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
