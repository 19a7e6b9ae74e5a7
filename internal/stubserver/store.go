package stubserver

import (
	"fmt"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
)

// store is the in-memory state behind the stub API: accounts, per-user
// carts and orders, and a seeded read-only catalog. It owns all
// pricing: cart totals and order amounts are recomputed here on every
// read, which is exactly the authority the client must not
// second-guess.
type store struct {
	mu       sync.Mutex
	products []entity.Product
	accounts map[string]*account // keyed by email
	byID     map[string]*account // keyed by user id
	carts    map[string][]cartLine
	orders   map[string][]*orderRecord
	orderSeq int
}

type account struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type cartLine struct {
	ProductID string
	Quantity  int
}

type orderRecord struct {
	ID          string
	Number      string
	UserID      string
	Status      entity.OrderStatus
	TotalAmount float64
	Items       []orderLine
	Shipping    entity.ShippingAddress
	CreatedAt   time.Time
}

type orderLine struct {
	ProductName string
	Quantity    int
}

func newStore(products []entity.Product) *store {
	return &store{
		products: products,
		accounts: make(map[string]*account),
		byID:     make(map[string]*account),
		carts:    make(map[string][]cartLine),
		orders:   make(map[string][]*orderRecord),
	}
}

func (s *store) createAccount(firstName, lastName, email, password string) (*account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		return nil, domainerrors.ErrEmailTaken
	}

	acct := &account{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	}
	s.accounts[email] = acct
	s.byID[acct.ID] = acct

	return acct, nil
}

func (s *store) authenticate(email, password string) (*account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, exists := s.accounts[email]
	if !exists || acct.Password != password {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return acct, nil
}

func (s *store) accountByID(userID string) (*account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, exists := s.byID[userID]

	return acct, exists
}

func (s *store) catalog() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.products
}

func (s *store) product(productID string) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findProduct(productID)
}

func (s *store) findProduct(productID string) (entity.Product, bool) {
	for _, product := range s.products {
		if product.ID == productID {
			return product, true
		}
	}

	return entity.Product{}, false
}

func (s *store) cart(userID string) []cartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]cartLine(nil), s.carts[userID]...)
}

func (s *store) addToCart(userID, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.findProduct(productID); !exists {
		return domainerrors.ErrProductNotFound
	}

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			s.carts[userID] = lines

			return nil
		}
	}

	s.carts[userID] = append(lines, cartLine{ProductID: productID, Quantity: quantity})

	return nil
}

// setCartQuantity updates a line in place; a quantity below 1 removes
// the line.
func (s *store) setCartQuantity(userID, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}

		if quantity < 1 {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
		} else {
			lines[i].Quantity = quantity
			s.carts[userID] = lines
		}

		return nil
	}

	return domainerrors.ErrProductNotFound
}

func (s *store) removeFromCart(userID, productID string) error {
	return s.setCartQuantity(userID, productID, 0)
}

func (s *store) clearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}

// placeOrder resolves every item against the catalog and prices the
// order server-side; the submitted payload carries no prices.
func (s *store) placeOrder(userID string, shipping entity.ShippingAddress, items []cartLine) (*orderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	lines := make([]orderLine, 0, len(items))
	for _, item := range items {
		product, exists := s.findProduct(item.ProductID)
		if !exists {
			return nil, domainerrors.ErrProductNotFound
		}

		total += product.Price * float64(item.Quantity)
		lines = append(lines, orderLine{ProductName: product.Name, Quantity: item.Quantity})
	}

	s.orderSeq++
	record := &orderRecord{
		ID:          uuid.New().String(),
		Number:      fmt.Sprintf("ORD-%06d", s.orderSeq),
		UserID:      userID,
		Status:      entity.OrderStatusConfirmed,
		TotalAmount: total,
		Items:       lines,
		Shipping:    shipping,
		CreatedAt:   time.Now().UTC(),
	}
	s.orders[userID] = append([]*orderRecord{record}, s.orders[userID]...)

	return record, nil
}

func (s *store) ordersFor(userID string) []*orderRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*orderRecord(nil), s.orders[userID]...)
}

// cancelOrder enforces the same eligibility rule the client applies:
// only confirmed or processing orders may be cancelled.
func (s *store) cancelOrder(userID, orderID string) (*orderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.orders[userID] {
		if record.ID != orderID {
			continue
		}

		if !record.Status.Cancellable() {
			return nil, domainerrors.ErrOrderNotCancellable
		}
		record.Status = entity.OrderStatusCancelled

		return record, nil
	}

	return nil, domainerrors.ErrOrderNotFound
}

// seedProducts is the demo catalog served by the stub.
func seedProducts() []entity.Product {
	return []entity.Product{
		{ID: "p-1001", Name: "Wireless Headphones", Description: "Over-ear wireless headphones with active noise cancellation.", Price: 2999, ImageURL: "https://images.example.com/products/headphones.jpg"},
		{ID: "p-1002", Name: "Smart Watch", Description: "Fitness tracking smart watch with a week-long battery.", Price: 4499, ImageURL: "https://images.example.com/products/watch.jpg"},
		{ID: "p-1003", Name: "Laptop Backpack", Description: "Water-resistant backpack with a padded 15-inch compartment.", Price: 1299, ImageURL: "https://images.example.com/products/backpack.jpg"},
		{ID: "p-1004", Name: "Mechanical Keyboard", Description: "Tenkeyless mechanical keyboard with hot-swappable switches.", Price: 3499, ImageURL: "https://images.example.com/products/keyboard.jpg"},
		{ID: "p-1005", Name: "USB-C Hub", Description: "7-in-1 hub with HDMI, card reader and 100W passthrough.", Price: 999, ImageURL: "https://images.example.com/products/hub.jpg"},
		{ID: "p-1006", Name: "Desk Lamp", Description: "Dimmable LED desk lamp with adjustable color temperature.", Price: 799, ImageURL: "https://images.example.com/products/lamp.jpg"},
		{ID: "p-1007", Name: "Bluetooth Speaker", Description: "Portable speaker with 12 hours of playback.", Price: 1899, ImageURL: "https://images.example.com/products/speaker.jpg"},
		{ID: "p-1008", Name: "Ergonomic Mouse", Description: "Vertical ergonomic mouse with silent clicks.", Price: 1499, ImageURL: "https://images.example.com/products/mouse.jpg"},
	}
}
