package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedCart() *stubCart {
	return &stubCart{cart: entity.Cart{
		Items: []entity.CartLine{
			{ProductID: "p-1", Name: "Desk Lamp", UnitPrice: 799, Quantity: 2},
			{ProductID: "p-2", Name: "USB-C Hub", UnitPrice: 999, Quantity: 1},
		},
		TotalItems:  3,
		TotalAmount: 2597,
	}}
}

func TestSubmitValidatesShippingBeforeRequest(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		address  string
		sentinel *domainerrors.BaseError
		message  string
	}{
		{name: "missing first name", last: "Lovelace", address: "12 Crescent", sentinel: domainerrors.ErrFirstNameRequired, message: "First name is required"},
		{name: "missing last name", first: "Ada", address: "12 Crescent", sentinel: domainerrors.ErrLastNameRequired, message: "Last name is required"},
		{name: "missing address", first: "Ada", last: "Lovelace", sentinel: domainerrors.ErrAddressRequired, message: "Address is required"},
		{name: "whitespace only counts as missing", first: "   ", last: "Lovelace", address: "12 Crescent", sentinel: domainerrors.ErrFirstNameRequired, message: "First name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ordersGw := &fakeOrdersGateway{}
			notifier := &recordingNotifier{}
			checkout := NewCheckoutService(ordersGw, populatedCart(), notifier, testLogger())

			_, err := checkout.Submit(context.Background(), usecase.ShippingInput{
				FirstName: tt.first,
				LastName:  tt.last,
				Address:   tt.address,
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))

			assert.Zero(t, ordersGw.createCalls, "no request may be sent for an invalid form")
			assert.Equal(t, []string{tt.message}, notifier.errors)
		})
	}
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	ordersGw := &fakeOrdersGateway{}
	notifier := &recordingNotifier{}
	checkout := NewCheckoutService(ordersGw, &stubCart{cart: entity.EmptyCart()}, notifier, testLogger())

	_, err := checkout.Submit(context.Background(), usecase.ShippingInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "12 Crescent",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
	assert.Zero(t, ordersGw.createCalls)
}

func TestSubmitSendsLinesWithoutPrices(t *testing.T) {
	ordersGw := &fakeOrdersGateway{createOrder: entity.Order{ID: "o-1", Number: "ORD-000001", TotalAmount: 2597}}
	cart := populatedCart()
	notifier := &recordingNotifier{}
	checkout := NewCheckoutService(ordersGw, cart, notifier, testLogger())

	order, err := checkout.Submit(context.Background(), usecase.ShippingInput{
		FirstName: "  Ada ",
		LastName:  "Lovelace",
		Address:   "12 Crescent",
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "ORD-000001", order.Number)

	assert.Equal(t, "Ada", ordersGw.lastCreate.FirstName, "fields are trimmed before submission")
	require.Len(t, ordersGw.lastCreate.Items, 2)
	assert.Equal(t, gateway.OrderLine{ID: "p-1", Quantity: 2}, ordersGw.lastCreate.Items[0])
	assert.Equal(t, gateway.OrderLine{ID: "p-2", Quantity: 1}, ordersGw.lastCreate.Items[1])

	assert.Equal(t, 1, cart.clearCalls)
	assert.True(t, cart.clearSilent, "the confirmation must be the only notification")
	assert.Equal(t, []string{"Order placed successfully!"}, notifier.successes)
	assert.Empty(t, notifier.errors)
}

func TestSubmitFailureLeavesCartUntouched(t *testing.T) {
	ordersGw := &fakeOrdersGateway{createErr: &gateway.RemoteError{StatusCode: 400, Message: "Cart is empty"}}
	cart := populatedCart()
	notifier := &recordingNotifier{}
	checkout := NewCheckoutService(ordersGw, cart, notifier, testLogger())

	_, err := checkout.Submit(context.Background(), usecase.ShippingInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "12 Crescent",
	})
	require.Error(t, err)

	assert.Zero(t, cart.clearCalls, "the cart survives a failed submission for retry")
	assert.Equal(t, []string{"Cart is empty"}, notifier.errors)
	assert.Empty(t, notifier.successes)
}

func TestSubmitFailureWithoutServerMessage(t *testing.T) {
	ordersGw := &fakeOrdersGateway{createErr: errors.New("connection refused")}
	notifier := &recordingNotifier{}
	checkout := NewCheckoutService(ordersGw, populatedCart(), notifier, testLogger())

	_, err := checkout.Submit(context.Background(), usecase.ShippingInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "12 Crescent",
	})
	require.Error(t, err)
	assert.Equal(t, []string{"Failed to place order. Please try again."}, notifier.errors)
}

func TestBusyOnlyDuringSubmission(t *testing.T) {
	checkout := NewCheckoutService(&fakeOrdersGateway{}, populatedCart(), &recordingNotifier{}, testLogger())

	assert.False(t, checkout.Busy())
	_, err := checkout.Submit(context.Background(), usecase.ShippingInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "12 Crescent",
	})
	require.NoError(t, err)
	assert.False(t, checkout.Busy())
}
