package orders

import (
	"context"
	"errors"
	"github.com/ariefcatur/go-storefront/internal/kv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"strings"
	"sync"
	"time"
)

var ErrNotFound = errors.New("order not found")

// dateLayout matches the en-US numeric short date shown on receipts.
const dateLayout = "01/02/2006"

// Store keeps placed orders most recent first.
type Store struct {
	mu      sync.Mutex
	backend kv.Backend
	orders  []Order
	now     func() time.Time
}

func New(ctx context.Context, b kv.Backend) (*Store, error) {
	list, err := kv.Load(ctx, b, kv.KeyOrders, []Order{})
	if err != nil {
		return nil, err
	}
	return &Store{backend: b, orders: list, now: time.Now}, nil
}

func (s *Store) commit(ctx context.Context, next []Order) error {
	if err := kv.Save(ctx, s.backend, kv.KeyOrders, next); err != nil {
		return err
	}
	s.orders = next
	return nil
}

// AddOrder stores a Pending order built from in. Line items are copied, so
// later changes to the caller's slice never reach the stored order.
func (s *Store) AddOrder(ctx context.Context, in NewOrder) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	items := make([]LineItem, len(in.OrderItems))
	copy(items, in.OrderItems)
	o := Order{
		ID:              uuid.NewString(),
		CustomerDetails: in.CustomerDetails,
		OrderItems:      items,
		Subtotal:        in.Subtotal,
		Shipping:        in.Shipping,
		Tax:             in.Tax,
		Total:           in.Total,
		Status:          StatusPending,
		CreatedAt:       now.UTC().Truncate(time.Millisecond),
		Date:            now.Format(dateLayout),
	}

	next := make([]Order, 0, len(s.orders)+1)
	next = append(next, o)
	next = append(next, s.orders...)
	if err := s.commit(ctx, next); err != nil {
		return Order{}, err
	}
	return o.clone(), nil
}

// UpdateOrderStatus sets the status of id and returns the previous one.
// Any status may follow any other.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status Status) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return "", ErrNotFound
	}
	prev := s.orders[i].Status
	next := make([]Order, len(s.orders))
	copy(next, s.orders)
	next[i].Status = status
	if err := s.commit(ctx, next); err != nil {
		return "", err
	}
	return prev, nil
}

// DeleteOrder removes id and returns the removed order.
func (s *Store) DeleteOrder(ctx context.Context, id string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Order{}, ErrNotFound
	}
	removed := s.orders[i]
	next := make([]Order, 0, len(s.orders)-1)
	next = append(next, s.orders[:i]...)
	next = append(next, s.orders[i+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return Order{}, err
	}
	return removed.clone(), nil
}

func (s *Store) indexOf(id string) int {
	for i, o := range s.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) OrderByID(id string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return Order{}, ErrNotFound
	}
	return s.orders[i].clone(), nil
}

// TotalSales sums Total over every order regardless of status.
func (s *Store) TotalSales() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := decimal.Zero
	for _, o := range s.orders {
		sum = sum.Add(decimal.NewFromFloat(o.Total))
	}
	return sum
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// RecentOrders returns the first limit orders in insertion order (newest
// first); it never re-sorts by date.
func (s *Store) RecentOrders(limit int) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	if limit > len(s.orders) {
		limit = len(s.orders)
	}
	return cloneAll(s.orders[:limit])
}

func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.orders)
}

// ByStatus filters by status; "" or "All" returns every order.
func (s *Store) ByStatus(status string) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == "" || strings.EqualFold(status, "All") {
		return cloneAll(s.orders)
	}
	out := []Order{}
	for _, o := range s.orders {
		if string(o.Status) == status {
			out = append(out, o.clone())
		}
	}
	return out
}

// StatusCounts counts orders per known status; unknown statuses are skipped.
func (s *Store) StatusCounts() map[Status]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[Status]int, len(Statuses))
	for _, st := range Statuses {
		counts[st] = 0
	}
	for _, o := range s.orders {
		if _, ok := counts[o.Status]; ok {
			counts[o.Status]++
		}
	}
	return counts
}

func (s *Store) ByCustomerEmail(email string) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []Order{}
	for _, o := range s.orders {
		if email != "" && o.CustomerDetails.Email == email {
			out = append(out, o.clone())
		}
	}
	return out
}

func cloneAll(list []Order) []Order {
	out := make([]Order, len(list))
	for i, o := range list {
		out[i] = o.clone()
	}
	return out
}
