package api

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type orderItemPayload struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

type shippingAddressPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
}

type orderPayload struct {
	ID              string                 `json:"id"`
	LegacyID        string                 `json:"_id"`
	OrderID         string                 `json:"orderId"`
	Status          string                 `json:"status"`
	TotalAmount     float64                `json:"totalAmount"`
	Items           []orderItemPayload     `json:"items"`
	ShippingAddress shippingAddressPayload `json:"shippingAddress"`
	CreatedAt       time.Time              `json:"createdAt"`
}

func (p orderPayload) toEntity() entity.Order {
	id := p.ID
	if id == "" {
		id = p.LegacyID
	}

	items := make([]entity.OrderItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, entity.OrderItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	return entity.Order{
		ID:          id,
		Number:      p.OrderID,
		Status:      entity.OrderStatus(p.Status),
		TotalAmount: p.TotalAmount,
		Items:       items,
		ShippingAddress: entity.ShippingAddress{
			FirstName: p.ShippingAddress.FirstName,
			LastName:  p.ShippingAddress.LastName,
			Address:   p.ShippingAddress.Address,
		},
		CreatedAt: p.CreatedAt,
	}
}

// Create submits a new order. The payload carries product ids and
// quantities only; prices are resolved server-side.
func (c *Client) Create(ctx context.Context, req gateway.CreateOrderRequest) (entity.Order, error) {
	type cartItem struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}

	items := make([]cartItem, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, cartItem{ID: line.ID, Quantity: line.Quantity})
	}

	body := struct {
		FirstName string     `json:"firstName"`
		LastName  string     `json:"lastName"`
		Address   string     `json:"address"`
		CartItems []cartItem `json:"cartItems"`
	}{req.FirstName, req.LastName, req.Address, items}

	var data struct {
		Order orderPayload `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders", body, &data); err != nil {
		return entity.Order{}, errors.Wrap(err, "create order")
	}

	return data.Order.toEntity(), nil
}

// List retrieves the caller's orders.
func (c *Client) List(ctx context.Context) ([]entity.Order, error) {
	var data struct {
		Orders []orderPayload `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &data); err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	orders := make([]entity.Order, 0, len(data.Orders))
	for _, order := range data.Orders {
		orders = append(orders, order.toEntity())
	}

	return orders, nil
}

// Cancel requests cancellation of an order.
func (c *Client) Cancel(ctx context.Context, orderID string) error {
	return errors.Wrap(c.do(ctx, http.MethodPatch, "/orders/"+orderID+"/cancel", nil, nil), "cancel order")
}
