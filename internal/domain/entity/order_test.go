package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCancellable(t *testing.T) {
	tests := []struct {
		name   string
		status OrderStatus
		want   bool
	}{
		{name: "confirmed", status: OrderStatusConfirmed, want: true},
		{name: "processing", status: OrderStatusProcessing, want: true},
		{name: "shipped", status: OrderStatusShipped, want: false},
		{name: "delivered", status: OrderStatusDelivered, want: false},
		{name: "cancelled", status: OrderStatusCancelled, want: false},
		{name: "uppercase wire value", status: OrderStatus("CONFIRMED"), want: true},
		{name: "mixed case wire value", status: OrderStatus("Processing"), want: true},
		{name: "unknown status", status: OrderStatus("refunded"), want: false},
		{name: "empty status", status: OrderStatus(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Cancellable())
		})
	}
}
