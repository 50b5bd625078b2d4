package wishlist

import (
	"context"
	"github.com/ariefcatur/go-storefront/internal/catalog"
	"github.com/ariefcatur/go-storefront/internal/kv"
	"sync"
)

// Store keeps saved-for-later product snapshots, at most one per product id.
type Store struct {
	mu      sync.Mutex
	backend kv.Backend
	items   []catalog.Product
}

func New(ctx context.Context, b kv.Backend) (*Store, error) {
	items, err := kv.Load(ctx, b, kv.KeyWishlist, []catalog.Product{})
	if err != nil {
		return nil, err
	}
	return &Store{backend: b, items: dedupe(items)}, nil
}

func dedupe(items []catalog.Product) []catalog.Product {
	out := make([]catalog.Product, 0, len(items))
	seen := map[string]bool{}
	for _, p := range items {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}

func (s *Store) commit(ctx context.Context, next []catalog.Product) error {
	if err := kv.Save(ctx, s.backend, kv.KeyWishlist, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, p := range s.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) add(ctx context.Context, p catalog.Product) error {
	if s.indexOf(p.ID) >= 0 {
		return nil
	}
	next := make([]catalog.Product, len(s.items), len(s.items)+1)
	copy(next, s.items)
	return s.commit(ctx, append(next, p))
}

func (s *Store) remove(ctx context.Context, id string) error {
	next := make([]catalog.Product, 0, len(s.items))
	for _, p := range s.items {
		if p.ID != id {
			next = append(next, p)
		}
	}
	return s.commit(ctx, next)
}

// AddToWishlist is a no-op when the product is already saved.
func (s *Store) AddToWishlist(ctx context.Context, p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(ctx, p)
}

func (s *Store) RemoveFromWishlist(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(ctx, id)
}

// ToggleWishlist adds p when absent and removes it when present. It reports
// whether p is saved afterwards.
func (s *Store) ToggleWishlist(ctx context.Context, p catalog.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(p.ID) >= 0 {
		return false, s.remove(ctx, p.ID)
	}
	return true, s.add(ctx, p)
}

func (s *Store) IsInWishlist(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

func (s *Store) ClearWishlist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, []catalog.Product{})
}

func (s *Store) Items() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
