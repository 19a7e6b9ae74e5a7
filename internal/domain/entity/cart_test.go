package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartLookups(t *testing.T) {
	cart := Cart{
		Items: []CartLine{
			{ProductID: "p-1", Name: "Desk Lamp", UnitPrice: 799, Quantity: 2},
			{ProductID: "p-2", Name: "USB-C Hub", UnitPrice: 999, Quantity: 1},
		},
		TotalItems:  3,
		TotalAmount: 2597,
	}

	assert.False(t, cart.IsEmpty())
	assert.True(t, cart.Contains("p-1"))
	assert.False(t, cart.Contains("p-3"))
	assert.Equal(t, 2, cart.QuantityOf("p-1"))
	assert.Equal(t, 0, cart.QuantityOf("p-3"))

	line, ok := cart.Line("p-2")
	assert.True(t, ok)
	assert.Equal(t, "USB-C Hub", line.Name)
}

func TestEmptyCart(t *testing.T) {
	cart := EmptyCart()

	assert.True(t, cart.IsEmpty())
	assert.NotNil(t, cart.Items)
	assert.Zero(t, cart.TotalItems)
	assert.Zero(t, cart.TotalAmount)
}
