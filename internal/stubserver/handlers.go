package stubserver

import (
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// --- wire shapes ---

type userJSON struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func toUserJSON(acct *account) userJSON {
	return userJSON{
		ID:        acct.ID,
		FirstName: acct.FirstName,
		LastName:  acct.LastName,
		Email:     acct.Email,
	}
}

type productJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

type cartItemJSON struct {
	Product     string  `json:"product"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
}

type cartJSON struct {
	Items       []cartItemJSON `json:"items"`
	TotalItems  int            `json:"totalItems"`
	TotalAmount float64        `json:"totalAmount"`
}

type orderItemJSON struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

type shippingJSON struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
}

type orderJSON struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"orderId"`
	Status          string          `json:"status"`
	TotalAmount     float64         `json:"totalAmount"`
	Items           []orderItemJSON `json:"items"`
	ShippingAddress shippingJSON    `json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (s *Server) toOrderJSON(record *orderRecord) orderJSON {
	items := make([]orderItemJSON, 0, len(record.Items))
	for _, item := range record.Items {
		items = append(items, orderItemJSON{ProductName: item.ProductName, Quantity: item.Quantity})
	}

	return orderJSON{
		ID:          record.ID,
		OrderID:     record.Number,
		Status:      string(record.Status),
		TotalAmount: record.TotalAmount,
		Items:       items,
		ShippingAddress: shippingJSON{
			FirstName: record.Shipping.FirstName,
			LastName:  record.Shipping.LastName,
			Address:   record.Shipping.Address,
		},
		CreatedAt: record.CreatedAt,
	}
}

// toCartJSON prices the cart from the catalog: unit prices and both
// totals are computed here on every read.
func (s *Server) toCartJSON(lines []cartLine) cartJSON {
	out := cartJSON{Items: []cartItemJSON{}}
	for _, line := range lines {
		product, exists := s.store.product(line.ProductID)
		if !exists {
			continue
		}

		out.Items = append(out.Items, cartItemJSON{
			Product:     product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Image:       product.ImageURL,
			Quantity:    line.Quantity,
		})
		out.TotalItems += line.Quantity
		out.TotalAmount += product.Price * float64(line.Quantity)
	}

	return out
}

// --- auth ---

func (s *Server) handleSignup(c echo.Context) error {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.Email) == "" || len(req.Password) < 6 {
		return fail(c, http.StatusBadRequest, "All fields are required and password must be at least 6 characters")
	}

	acct, err := s.store.createAccount(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return s.failFromDomain(c, err)
	}

	token, err := s.tokens.mint(acct.ID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to issue token")
	}

	return ok(c, http.StatusCreated, echo.Map{"user": toUserJSON(acct), "token": token}, "Account created")
}

func (s *Server) handleLogin(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	acct, err := s.store.authenticate(req.Email, req.Password)
	if err != nil {
		return s.failFromDomain(c, err)
	}

	token, err := s.tokens.mint(acct.ID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to issue token")
	}

	return ok(c, http.StatusOK, echo.Map{"user": toUserJSON(acct), "token": token}, "Login successful")
}

func (s *Server) handleProfile(c echo.Context) error {
	acct, exists := s.store.accountByID(currentUserID(c))
	if !exists {
		return fail(c, http.StatusUnauthorized, "Unknown account")
	}

	return ok(c, http.StatusOK, echo.Map{"user": toUserJSON(acct)}, "")
}

// --- catalog ---

func (s *Server) handleListProducts(c echo.Context) error {
	catalog := s.store.catalog()
	products := make([]productJSON, 0, len(catalog))
	for _, product := range catalog {
		products = append(products, productJSON{
			ID:          product.ID,
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Image:       product.ImageURL,
		})
	}

	return ok(c, http.StatusOK, echo.Map{"products": products, "count": len(products)}, "")
}

// --- cart ---

func (s *Server) handleGetCart(c echo.Context) error {
	return ok(c, http.StatusOK, s.toCartJSON(s.store.cart(currentUserID(c))), "")
}

func (s *Server) handleAddToCart(c echo.Context) error {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	userID := currentUserID(c)
	if err := s.store.addToCart(userID, req.ProductID, req.Quantity); err != nil {
		return s.failFromDomain(c, err)
	}

	return ok(c, http.StatusOK, s.toCartJSON(s.store.cart(userID)), "Item added to cart")
}

func (s *Server) handleUpdateCartItem(c echo.Context) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	userID := currentUserID(c)
	if err := s.store.setCartQuantity(userID, c.Param("id"), req.Quantity); err != nil {
		return s.failFromDomain(c, err)
	}

	return ok(c, http.StatusOK, s.toCartJSON(s.store.cart(userID)), "Cart updated")
}

func (s *Server) handleRemoveCartItem(c echo.Context) error {
	userID := currentUserID(c)
	if err := s.store.removeFromCart(userID, c.Param("id")); err != nil {
		return s.failFromDomain(c, err)
	}

	return ok(c, http.StatusOK, s.toCartJSON(s.store.cart(userID)), "Item removed from cart")
}

func (s *Server) handleClearCart(c echo.Context) error {
	userID := currentUserID(c)
	s.store.clearCart(userID)

	return ok(c, http.StatusOK, s.toCartJSON(nil), "Cart cleared")
}

// --- orders ---

func (s *Server) handleCreateOrder(c echo.Context) error {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Address   string `json:"address"`
		CartItems []struct {
			ID       string `json:"id"`
			Quantity int    `json:"quantity"`
		} `json:"cartItems"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.Address) == "" {
		return fail(c, http.StatusBadRequest, "Shipping details are required")
	}
	if len(req.CartItems) == 0 {
		return failWith(c, domainerrors.ErrCartEmpty)
	}

	items := make([]cartLine, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		items = append(items, cartLine{ProductID: item.ID, Quantity: item.Quantity})
	}

	record, err := s.store.placeOrder(currentUserID(c), entity.ShippingAddress{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Address:   strings.TrimSpace(req.Address),
	}, items)
	if err != nil {
		return s.failFromDomain(c, err)
	}

	return ok(c, http.StatusCreated, echo.Map{"order": s.toOrderJSON(record)}, "Order placed")
}

func (s *Server) handleListOrders(c echo.Context) error {
	records := s.store.ordersFor(currentUserID(c))
	orders := make([]orderJSON, 0, len(records))
	for _, record := range records {
		orders = append(orders, s.toOrderJSON(record))
	}

	return ok(c, http.StatusOK, echo.Map{"orders": orders}, "")
}

func (s *Server) handleCancelOrder(c echo.Context) error {
	record, err := s.store.cancelOrder(currentUserID(c), c.Param("id"))
	if err != nil {
		return s.failFromDomain(c, err)
	}

	return ok(c, http.StatusOK, echo.Map{"order": s.toOrderJSON(record)}, "Order cancelled")
}

// failFromDomain maps a domain error to its envelope; anything else is
// a 500.
func (s *Server) failFromDomain(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return failWith(c, appErr)
	}

	return fail(c, http.StatusInternalServerError, "Internal server error")
}
