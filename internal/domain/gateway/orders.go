package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderLine is a product/quantity pair submitted with an order. Prices
// are intentionally absent; the server is the pricing authority.
type OrderLine struct {
	ID       string
	Quantity int
}

// CreateOrderRequest is the order submission payload.
type CreateOrderRequest struct {
	FirstName string
	LastName  string
	Address   string
	Items     []OrderLine
}

// Orders is the order surface of the remote API.
type Orders interface {
	Create(ctx context.Context, req CreateOrderRequest) (entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	Cancel(ctx context.Context, orderID string) error
}
