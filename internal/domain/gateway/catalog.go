package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// Catalog is the read-only product surface of the remote API.
type Catalog interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
}
