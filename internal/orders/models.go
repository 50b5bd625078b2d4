package orders

import "time"

type Address struct {
	Street    string `json:"street"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

type CustomerDetails struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	BillingAddress  Address `json:"billingAddress"`
	ShippingAddress Address `json:"shippingAddress"`
	PaymentMethod   string  `json:"paymentMethod"`
	OrderNotes      string  `json:"orderNotes,omitempty"`
}

// LineItem is a copy of a cart line taken when the order is placed.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

type Order struct {
	ID              string          `json:"id"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
	OrderItems      []LineItem      `json:"orderItems"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	Tax             float64         `json:"tax"`
	Total           float64         `json:"total"`
	Status          Status          `json:"status"` // lihat status.go
	CreatedAt       time.Time       `json:"createdAt"`
	Date            string          `json:"date"` // MM/DD/YYYY
}

// NewOrder is the checkout payload handed to AddOrder.
type NewOrder struct {
	CustomerDetails CustomerDetails
	OrderItems      []LineItem
	Subtotal        float64
	Shipping        float64
	Tax             float64
	Total           float64
}

// ItemCount is the number of units across all lines.
func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.OrderItems {
		n += it.Quantity
	}
	return n
}

func (o Order) CustomerName() string {
	name := o.CustomerDetails.FirstName
	if o.CustomerDetails.LastName != "" {
		if name != "" {
			name += " "
		}
		name += o.CustomerDetails.LastName
	}
	return name
}

func (o Order) clone() Order {
	items := make([]LineItem, len(o.OrderItems))
	copy(items, o.OrderItems)
	o.OrderItems = items
	return o
}
