package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase fetches and annotates the user's past orders.
type OrderUsecase interface {
	// FetchOrders retrieves the order list. On failure the error is
	// held for display and the previous list is left unchanged.
	FetchOrders(ctx context.Context) ([]entity.Order, error)

	// Retry re-runs the same fetch.
	Retry(ctx context.Context) ([]entity.Order, error)

	// Cancel requests cancellation and, on success, re-fetches the
	// full list rather than patching a single order locally.
	Cancel(ctx context.Context, orderID string) error

	Orders() []entity.Order
	LastError() error
	Loading() bool
}
