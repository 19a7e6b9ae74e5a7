package entity

// Cart is the client-held projection of the server-owned cart. The
// totals are recomputed server-side and trusted verbatim on every
// reload; the client never derives them by summing lines locally.
type Cart struct {
	Items       []CartLine
	TotalItems  int
	TotalAmount float64
}

// CartLine is a single product entry in the cart. Quantity is always
// at least 1; a quantity below 1 removes the line.
type CartLine struct {
	ProductID string
	Name      string
	UnitPrice float64
	ImageURL  string
	Quantity  int
}

// EmptyCart returns the zero-value projection used as the fail-safe
// fallback state.
func EmptyCart() Cart {
	return Cart{Items: []CartLine{}}
}

// IsEmpty reports whether the projection holds no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Line returns the line for a product, if present.
func (c Cart) Line(productID string) (CartLine, bool) {
	for _, line := range c.Items {
		if line.ProductID == productID {
			return line, true
		}
	}

	return CartLine{}, false
}

// QuantityOf returns the cached quantity for a product, 0 when absent.
func (c Cart) QuantityOf(productID string) int {
	line, ok := c.Line(productID)
	if !ok {
		return 0
	}

	return line.Quantity
}

// Contains reports whether the product has a line in the projection.
func (c Cart) Contains(productID string) bool {
	_, ok := c.Line(productID)

	return ok
}
