package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	ordersGateway gateway.Orders
	notifier      service.Notifier
	logger        *slog.Logger

	mu      sync.Mutex
	orders  []entity.Order
	lastErr error
	loading bool
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	ordersGateway gateway.Orders,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		ordersGateway: ordersGateway,
		notifier:      notifier,
		logger:        logger,
	}
}

// FetchOrders retrieves the caller's orders. On failure the error is
// held for display and the previously fetched list is left unchanged.
func (srv *orderService) FetchOrders(ctx context.Context) ([]entity.Order, error) {
	srv.setLoading(true)
	defer srv.setLoading(false)

	orders, err := srv.ordersGateway.List(ctx)
	if err != nil {
		srv.logger.Warn("Failed to fetch orders", slog.Any("error", err))
		srv.holdError(err)
		srv.notifier.Error("Failed to load orders. Please try again.")

		return nil, errors.Wrap(err, "fetch orders")
	}

	for i := range orders {
		orders[i].ExpectedDelivery = expectedDelivery(orders[i])
	}

	srv.mu.Lock()
	srv.orders = orders
	srv.lastErr = nil
	srv.mu.Unlock()

	srv.logger.Debug("Fetched orders", slog.Int("count", len(orders)))

	return orders, nil
}

// Retry re-runs the same fetch.
func (srv *orderService) Retry(ctx context.Context) ([]entity.Order, error) {
	return srv.FetchOrders(ctx)
}

// Cancel requests cancellation of an order. On success the full list
// is re-fetched rather than patching the single order's status
// locally; on failure the list is left unchanged.
func (srv *orderService) Cancel(ctx context.Context, orderID string) error {
	if err := srv.ordersGateway.Cancel(ctx, orderID); err != nil {
		srv.logger.Warn("Failed to cancel order", slog.String("orderId", orderID), slog.Any("error", err))
		srv.notifier.Error(userMessage(err, "Failed to cancel order. Please try again."))

		return errors.Wrap(err, "cancel order")
	}

	srv.notifier.Success("Order cancelled successfully! Refund will be processed within 3-5 business days.")

	if _, err := srv.FetchOrders(ctx); err != nil {
		return errors.Wrap(err, "refresh orders after cancel")
	}

	return nil
}

func (srv *orderService) Orders() []entity.Order {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.orders
}

func (srv *orderService) LastError() error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.lastErr
}

func (srv *orderService) Loading() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.loading
}

func (srv *orderService) setLoading(loading bool) {
	srv.mu.Lock()
	srv.loading = loading
	srv.mu.Unlock()
}

func (srv *orderService) holdError(err error) {
	srv.mu.Lock()
	srv.lastErr = err
	srv.mu.Unlock()
}

// expectedDelivery synthesizes a display-only delivery estimate: the
// order date plus a pseudo-random 2-7 day offset. It is not sourced
// from the server and is not stable across repeated fetches of the
// same order.
func expectedDelivery(order entity.Order) time.Time {
	return order.CreatedAt.AddDate(0, 0, 2+rand.IntN(6))
}
