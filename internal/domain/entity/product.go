package entity

// Product is a read-only catalog entry. The client fetches products
// and never mutates them; the server remains the pricing authority.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	ImageURL    string
}
