package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

type productPayload struct {
	ID          string  `json:"id"`
	LegacyID    string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

func (p productPayload) toEntity() entity.Product {
	id := p.ID
	if id == "" {
		id = p.LegacyID
	}

	return entity.Product{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.Image,
	}
}

// ListProducts retrieves the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var data struct {
		Products []productPayload `json:"products"`
		Count    int              `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/products", nil, &data); err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	products := make([]entity.Product, 0, len(data.Products))
	for _, product := range data.Products {
		products = append(products, product.toEntity())
	}

	return products, nil
}
