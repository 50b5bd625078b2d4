package orders

import (
	"encoding/json"
	"github.com/google/uuid"
	"time"
)

const (
	EventOrderPlaced        = "OrderPlaced"
	EventOrderStatusChanged = "OrderStatusChanged"
	EventOrderDeleted       = "OrderDeleted"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order_id
	Payload       json.RawMessage `json:"payload"`
}

// NewEnvelope wraps payload in a v1 envelope correlated to orderID.
func NewEnvelope(eventType, producer, orderID, traceID string, payload any) (Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		TraceID:       traceID,
		CorrelationID: orderID,
		Payload:       b,
	}, nil
}

// Topic returns the topic an event type is published on.
func Topic(eventType string) string {
	switch eventType {
	case EventOrderStatusChanged:
		return TopicOrderStatusChanged
	case EventOrderDeleted:
		return TopicOrderDeleted
	default:
		return TopicOrderPlaced
	}
}

type ItemQty struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
	Price     string `json:"price"`
}

type OrderPlacedPayload struct {
	OrderID   string    `json:"order_id"`
	Email     string    `json:"email"`
	Items     []ItemQty `json:"items"`
	Total     float64   `json:"total"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderStatusChangedPayload struct {
	OrderID string  `json:"order_id"`
	From    Status  `json:"from"`
	To      Status  `json:"to"`
	Total   float64 `json:"total"`
}

type OrderDeletedPayload struct {
	OrderID string  `json:"order_id"`
	Status  Status  `json:"status"`
	Total   float64 `json:"total"`
}

// PlacedPayload builds the OrderPlaced payload for o.
func PlacedPayload(o Order) OrderPlacedPayload {
	items := make([]ItemQty, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		items = append(items, ItemQty{ProductID: it.ID, Qty: it.Quantity, Price: it.Price})
	}
	return OrderPlacedPayload{
		OrderID:   o.ID,
		Email:     o.CustomerDetails.Email,
		Items:     items,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
