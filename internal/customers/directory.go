// Package customers builds the admin view of people who either registered
// locally or placed an order, joined by email.
package customers

import (
	"github.com/ariefcatur/go-storefront/internal/auth"
	"github.com/ariefcatur/go-storefront/internal/orders"
	"github.com/shopspring/decimal"
	"strings"
	"time"
)

const (
	SourceRegistered = "registered"
	SourceOrder      = "order"
)

type Customer struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	Role        string          `json:"role"`
	Source      string          `json:"source"`
	CreatedAt   time.Time       `json:"createdAt"`
	TotalOrders int             `json:"totalOrders"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
}

// Directory lists the registered user first, then every other order
// customer in the order they first appear in list.
func Directory(registered *auth.User, list []orders.Order) []Customer {
	out := []Customer{}
	if registered != nil && registered.Email != "" {
		out = append(out, Customer{
			ID:         registered.ID,
			FirstName:  registered.FirstName,
			LastName:   registered.LastName,
			Email:      registered.Email,
			Phone:      registered.Phone,
			Role:       registered.Role,
			Source:     SourceRegistered,
			CreatedAt:  registered.CreatedAt,
			TotalSpent: decimal.Zero,
		})
	}

	index := map[string]int{}
	for i, c := range out {
		index[c.Email] = i
	}
	for _, o := range list {
		email := o.CustomerDetails.Email
		if email == "" {
			continue
		}
		i, ok := index[email]
		if !ok {
			out = append(out, fromOrder(o))
			i = len(out) - 1
			index[email] = i
		}
		out[i].TotalOrders++
		out[i].TotalSpent = out[i].TotalSpent.Add(decimal.NewFromFloat(o.Total))
	}
	return out
}

func fromOrder(o orders.Order) Customer {
	d := o.CustomerDetails
	phone := d.Phone
	if phone == "" {
		phone = "N/A"
	}
	addr := "N/A"
	if d.ShippingAddress != (orders.Address{}) {
		addr = d.ShippingAddress.Street + ", " + d.ShippingAddress.City
	}
	return Customer{
		ID:         d.Email,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Email:      d.Email,
		Phone:      phone,
		Address:    addr,
		Role:       auth.RoleUser,
		Source:     SourceOrder,
		CreatedAt:  o.CreatedAt,
		TotalSpent: decimal.Zero,
	}
}

// Filter keeps customers whose name, email or phone contains search
// (case-insensitive) and whose role matches; role "" or "All" matches any.
func Filter(list []Customer, search, role string) []Customer {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := []Customer{}
	for _, c := range list {
		if role != "" && !strings.EqualFold(role, "All") && c.Role != strings.ToLower(role) {
			continue
		}
		if needle != "" && !containsAny(needle, c.FirstName, c.LastName, c.Email, c.Phone) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func containsAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
