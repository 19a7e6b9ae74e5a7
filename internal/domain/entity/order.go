package entity

import (
	"strings"
	"time"
)

// OrderStatus is the server-driven lifecycle state of an order. The
// only client-initiated transition is a cancel request.
type OrderStatus string

const (
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Cancellable is the single authoritative cancellation-eligibility
// rule: an order may be cancelled while confirmed or processing.
// Status comparison is case-insensitive since the wire value is not
// normalized.
func (s OrderStatus) Cancellable() bool {
	switch OrderStatus(strings.ToLower(string(s))) {
	case OrderStatusConfirmed, OrderStatusProcessing:
		return true
	default:
		return false
	}
}

// OrderItem is a product reference inside a placed order.
type OrderItem struct {
	ProductName string
	Quantity    int
}

// ShippingAddress is the recipient recorded on an order.
type ShippingAddress struct {
	FirstName string
	LastName  string
	Address   string
}

// Order is a placed order as reported by the storefront API.
type Order struct {
	ID              string
	Number          string // Human-facing order number.
	Status          OrderStatus
	TotalAmount     float64
	Items           []OrderItem
	ShippingAddress ShippingAddress
	CreatedAt       time.Time

	// ExpectedDelivery is synthesized client-side as CreatedAt plus a
	// pseudo-random 2-7 day offset. It is cosmetic, not sourced from
	// the server, and not stable across repeated views of the same
	// order.
	ExpectedDelivery time.Time
}
