package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	ordersGateway gateway.Orders
	cart          usecase.CartUsecase
	notifier      service.Notifier
	validate      *validator.Validate
	logger        *slog.Logger

	mu   sync.Mutex
	busy bool
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	ordersGateway gateway.Orders,
	cart usecase.CartUsecase,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		ordersGateway: ordersGateway,
		cart:          cart,
		notifier:      notifier,
		validate:      validator.New(),
		logger:        logger,
	}
}

// shippingForm carries the trimmed fields through validation. Field
// order determines which missing field is reported first.
type shippingForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Address   string `validate:"required"`
}

// Submit validates the shipping fields and the cart before any network
// call, then places the order. On success the cart is cleared silently
// so the order confirmation is the only notification shown.
func (srv *checkoutService) Submit(ctx context.Context, shipping usecase.ShippingInput) (*entity.Order, error) {
	form := shippingForm{
		FirstName: strings.TrimSpace(shipping.FirstName),
		LastName:  strings.TrimSpace(shipping.LastName),
		Address:   strings.TrimSpace(shipping.Address),
	}

	if err := srv.validate.Struct(form); err != nil {
		fieldErr := shippingFieldError(err)
		srv.notifier.Error(fieldErr.Message())

		return nil, errors.WithStack(fieldErr)
	}

	snapshot := srv.cart.Snapshot()
	if snapshot.IsEmpty() {
		srv.notifier.Error(domainerrors.ErrCartEmpty.Message())

		return nil, errors.WithStack(domainerrors.ErrCartEmpty)
	}

	srv.setBusy(true)
	defer srv.setBusy(false)

	lines := make([]gateway.OrderLine, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		lines = append(lines, gateway.OrderLine{ID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := srv.ordersGateway.Create(ctx, gateway.CreateOrderRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Address:   form.Address,
		Items:     lines,
	})
	if err != nil {
		srv.logger.Warn("Order submission failed", slog.Any("error", err))
		srv.notifier.Error(userMessage(err, "Failed to place order. Please try again."))

		return nil, errors.Wrap(err, "submit order")
	}

	// Silent clear: the order confirmation below must be the only
	// user-facing notification for this flow.
	if err := srv.cart.Clear(ctx, true); err != nil {
		srv.logger.Warn("Cart clear after order failed", slog.Any("error", err))
	}

	srv.notifier.Success("Order placed successfully!")
	srv.logger.Info("Order placed",
		slog.String("orderId", order.ID),
		slog.String("orderNumber", order.Number),
		slog.Float64("totalAmount", order.TotalAmount))

	return &order, nil
}

// Busy reports whether a submission is in flight. Callers must disable
// the triggering action while set; a later Submit does not abort an
// earlier one.
func (srv *checkoutService) Busy() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.busy
}

func (srv *checkoutService) setBusy(busy bool) {
	srv.mu.Lock()
	srv.busy = busy
	srv.mu.Unlock()
}

// shippingFieldError maps the first failed form field to its domain
// error.
func shippingFieldError(err error) *domainerrors.BaseError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domainerrors.ErrValidationFailed
	}

	switch fieldErrs[0].Field() {
	case "FirstName":
		return domainerrors.ErrFirstNameRequired
	case "LastName":
		return domainerrors.ErrLastNameRequired
	case "Address":
		return domainerrors.ErrAddressRequired
	default:
		return domainerrors.ErrValidationFailed
	}
}
