package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase maintains the client-side projection of the server-owned
// cart. After every mutation it reloads the full cart rather than
// patching the cache, so server-side pricing recalculation is never
// second-guessed locally.
type CartUsecase interface {
	// Load replaces the projection with a fresh fetch. On failure the
	// projection resets to an empty cart; a stale or partial cart is
	// never kept.
	Load(ctx context.Context) error

	// AddItem sends a quantity-1 add for the product. Without an
	// authenticated session it reports an error and performs no
	// request.
	AddItem(ctx context.Context, product entity.Product) error

	// SetQuantity updates a line's quantity. A quantity below 1 is
	// equivalent to RemoveItem.
	SetQuantity(ctx context.Context, productID string, quantity int) error

	RemoveItem(ctx context.Context, productID string) error

	// Clear empties the cart. silent suppresses the success
	// notification, used when clearing as a side effect of order
	// placement.
	Clear(ctx context.Context, silent bool) error

	// Reset drops the local projection without contacting the server.
	Reset()

	QuantityOf(productID string) int
	Contains(productID string) bool
	Snapshot() entity.Cart
	Loading() bool
}
