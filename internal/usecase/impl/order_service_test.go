package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedOrders() []entity.Order {
	return []entity.Order{
		{
			ID:          "o-2",
			Number:      "ORD-000002",
			Status:      entity.OrderStatusConfirmed,
			TotalAmount: 2597,
			CreatedAt:   time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "o-1",
			Number:      "ORD-000001",
			Status:      entity.OrderStatusDelivered,
			TotalAmount: 999,
			CreatedAt:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestFetchOrdersAnnotatesDeliveryEstimate(t *testing.T) {
	ordersGw := &fakeOrdersGateway{listOrders: placedOrders()}
	svc := NewOrderService(ordersGw, &recordingNotifier{}, testLogger())

	orders, err := svc.FetchOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	for _, order := range orders {
		offset := order.ExpectedDelivery.Sub(order.CreatedAt)
		assert.GreaterOrEqual(t, offset, 2*24*time.Hour)
		assert.LessOrEqual(t, offset, 7*24*time.Hour)
	}

	assert.Equal(t, orders, svc.Orders())
	assert.NoError(t, svc.LastError())
}

func TestFetchOrdersFailureHoldsErrorAndKeepsList(t *testing.T) {
	ordersGw := &fakeOrdersGateway{listOrders: placedOrders()}
	notifier := &recordingNotifier{}
	svc := NewOrderService(ordersGw, notifier, testLogger())

	_, err := svc.FetchOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, svc.Orders(), 2)

	ordersGw.listErr = errors.New("connection refused")
	_, err = svc.FetchOrders(context.Background())
	require.Error(t, err)

	assert.Len(t, svc.Orders(), 2, "a failed refresh keeps the previous list")
	assert.Error(t, svc.LastError())
	assert.Contains(t, notifier.errors, "Failed to load orders. Please try again.")

	ordersGw.listErr = nil
	_, err = svc.Retry(context.Background())
	require.NoError(t, err)
	assert.NoError(t, svc.LastError(), "a successful retry clears the held error")
}

func TestCancelRefetchesList(t *testing.T) {
	ordersGw := &fakeOrdersGateway{listOrders: placedOrders()}
	notifier := &recordingNotifier{}
	svc := NewOrderService(ordersGw, notifier, testLogger())

	require.NoError(t, svc.Cancel(context.Background(), "o-2"))

	assert.Equal(t, 1, ordersGw.cancelCalls)
	assert.Equal(t, "o-2", ordersGw.lastCancelID)
	assert.Equal(t, 1, ordersGw.listCalls, "cancel re-fetches instead of patching locally")
	assert.Equal(t,
		[]string{"Order cancelled successfully! Refund will be processed within 3-5 business days."},
		notifier.successes)
}

func TestCancelFailureSurfacesServerMessage(t *testing.T) {
	ordersGw := &fakeOrdersGateway{
		cancelErr: &gateway.RemoteError{StatusCode: 400, Message: "Order cannot be cancelled at this stage"},
	}
	notifier := &recordingNotifier{}
	svc := NewOrderService(ordersGw, notifier, testLogger())

	err := svc.Cancel(context.Background(), "o-1")
	require.Error(t, err)

	assert.Zero(t, ordersGw.listCalls, "a failed cancel does not refresh")
	assert.Equal(t, []string{"Order cannot be cancelled at this stage"}, notifier.errors)
}
