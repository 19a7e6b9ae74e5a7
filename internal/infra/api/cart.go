package api

import (
	"context"
	"encoding/json"
	"net/http"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// productRef decodes the cart line's product field, which the API may
// serialize either as a bare id string or as an embedded object.
type productRef struct {
	ID string
}

func (r *productRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id

		return nil
	}

	var obj struct {
		LegacyID string `json:"_id"`
		ID       string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(err, "decode product reference")
	}

	r.ID = obj.LegacyID
	if r.ID == "" {
		r.ID = obj.ID
	}

	return nil
}

type cartLinePayload struct {
	Product     productRef `json:"product"`
	ProductName string     `json:"productName"`
	Price       float64    `json:"price"`
	Image       string     `json:"image"`
	Quantity    int        `json:"quantity"`
}

type cartPayload struct {
	Items       []cartLinePayload `json:"items"`
	TotalItems  int               `json:"totalItems"`
	TotalAmount float64           `json:"totalAmount"`
}

// toEntity maps the wire cart to the domain projection. The totals are
// taken verbatim from the response, never recomputed from the lines.
func (p cartPayload) toEntity() entity.Cart {
	items := make([]entity.CartLine, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, entity.CartLine{
			ProductID: item.Product.ID,
			Name:      item.ProductName,
			UnitPrice: item.Price,
			ImageURL:  item.Image,
			Quantity:  item.Quantity,
		})
	}

	return entity.Cart{
		Items:       items,
		TotalItems:  p.TotalItems,
		TotalAmount: p.TotalAmount,
	}
}

// Fetch retrieves the caller's current cart.
func (c *Client) Fetch(ctx context.Context) (entity.Cart, error) {
	var data cartPayload
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &data); err != nil {
		return entity.Cart{}, errors.Wrap(err, "fetch cart")
	}

	return data.toEntity(), nil
}

// AddItem adds quantity units of a product to the cart.
func (c *Client) AddItem(ctx context.Context, productID string, quantity int) error {
	body := struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}{productID, quantity}

	return errors.Wrap(c.do(ctx, http.MethodPost, "/cart/add", body, nil), "add cart item")
}

// UpdateItem sets the quantity of an existing cart line.
func (c *Client) UpdateItem(ctx context.Context, productID string, quantity int) error {
	body := struct {
		Quantity int `json:"quantity"`
	}{quantity}

	return errors.Wrap(c.do(ctx, http.MethodPut, "/cart/item/"+productID, body, nil), "update cart item")
}

// RemoveItem removes a cart line.
func (c *Client) RemoveItem(ctx context.Context, productID string) error {
	return errors.Wrap(c.do(ctx, http.MethodDelete, "/cart/item/"+productID, nil, nil), "remove cart item")
}

// Clear empties the caller's cart server-side.
func (c *Client) Clear(ctx context.Context) error {
	return errors.Wrap(c.do(ctx, http.MethodDelete, "/cart/clear", nil, nil), "clear cart")
}
