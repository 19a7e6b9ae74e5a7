package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// Cart is the cart surface of the remote API. The server owns the
// cart; every mutation is followed by a fresh Fetch rather than a
// local patch.
type Cart interface {
	Fetch(ctx context.Context) (entity.Cart, error)
	AddItem(ctx context.Context, productID string, quantity int) error
	UpdateItem(ctx context.Context, productID string, quantity int) error
	RemoveItem(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
}
