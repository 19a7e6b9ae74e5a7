package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase exposes the read-only product listing.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	Products() []entity.Product
	LastError() error
	Loading() bool
}
