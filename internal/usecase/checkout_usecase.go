package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ShippingInput is the checkout form content. Fields are trimmed
// before validation and submission.
type ShippingInput struct {
	FirstName string
	LastName  string
	Address   string
}

// CheckoutUsecase turns the populated cart plus shipping details into
// a persisted order.
type CheckoutUsecase interface {
	// Submit validates the shipping fields and the cart before any
	// network call, places the order, and on success clears the cart
	// silently so the order confirmation is the only notification
	// shown. On failure the cart and form are left untouched for
	// retry.
	Submit(ctx context.Context, shipping ShippingInput) (*entity.Order, error)

	// Busy reports whether a submission is in flight. Callers must
	// disable the triggering action while set.
	Busy() bool
}
