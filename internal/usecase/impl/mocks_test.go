package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAuthGateway is a hand-rolled gateway.Auth double.
type fakeAuthGateway struct {
	loginCreds  gateway.Credentials
	loginErr    error
	signupCreds gateway.Credentials
	signupErr   error

	loginCalls  int
	signupCalls int
}

func (f *fakeAuthGateway) Login(ctx context.Context, req gateway.LoginRequest) (gateway.Credentials, error) {
	f.loginCalls++

	return f.loginCreds, f.loginErr
}

func (f *fakeAuthGateway) Signup(ctx context.Context, req gateway.SignupRequest) (gateway.Credentials, error) {
	f.signupCalls++

	return f.signupCreds, f.signupErr
}

func (f *fakeAuthGateway) Profile(ctx context.Context) (entity.User, error) {
	return f.loginCreds.User, nil
}

// fakeCartGateway is a hand-rolled gateway.Cart double. fetchFn, when
// set, overrides the canned fetch result.
type fakeCartGateway struct {
	cart      entity.Cart
	fetchErr  error
	fetchFn   func() (entity.Cart, error)
	addErr    error
	updateErr error
	removeErr error
	clearErr  error

	fetchCalls   int
	addCalls     int
	updateCalls  int
	removeCalls  int
	clearCalls   int
	lastAddID    string
	lastAddQty   int
	lastUpdateID string
	lastQty      int
	lastRemoveID string
}

func (f *fakeCartGateway) Fetch(ctx context.Context) (entity.Cart, error) {
	f.fetchCalls++
	if f.fetchFn != nil {
		return f.fetchFn()
	}

	return f.cart, f.fetchErr
}

func (f *fakeCartGateway) AddItem(ctx context.Context, productID string, quantity int) error {
	f.addCalls++
	f.lastAddID = productID
	f.lastAddQty = quantity

	return f.addErr
}

func (f *fakeCartGateway) UpdateItem(ctx context.Context, productID string, quantity int) error {
	f.updateCalls++
	f.lastUpdateID = productID
	f.lastQty = quantity

	return f.updateErr
}

func (f *fakeCartGateway) RemoveItem(ctx context.Context, productID string) error {
	f.removeCalls++
	f.lastRemoveID = productID

	return f.removeErr
}

func (f *fakeCartGateway) Clear(ctx context.Context) error {
	f.clearCalls++

	return f.clearErr
}

// fakeOrdersGateway is a hand-rolled gateway.Orders double.
type fakeOrdersGateway struct {
	createOrder entity.Order
	createErr   error
	listOrders  []entity.Order
	listErr     error
	cancelErr   error

	createCalls  int
	listCalls    int
	cancelCalls  int
	lastCreate   gateway.CreateOrderRequest
	lastCancelID string
}

func (f *fakeOrdersGateway) Create(ctx context.Context, req gateway.CreateOrderRequest) (entity.Order, error) {
	f.createCalls++
	f.lastCreate = req

	return f.createOrder, f.createErr
}

func (f *fakeOrdersGateway) List(ctx context.Context) ([]entity.Order, error) {
	f.listCalls++

	return f.listOrders, f.listErr
}

func (f *fakeOrdersGateway) Cancel(ctx context.Context, orderID string) error {
	f.cancelCalls++
	f.lastCancelID = orderID

	return f.cancelErr
}

// fakeCatalogGateway is a hand-rolled gateway.Catalog double.
type fakeCatalogGateway struct {
	products []entity.Product
	err      error
	calls    int
}

func (f *fakeCatalogGateway) ListProducts(ctx context.Context) ([]entity.Product, error) {
	f.calls++

	return f.products, f.err
}

// fakeCredentialRepo keeps the pair in memory.
type fakeCredentialRepo struct {
	user    entity.User
	token   string
	loadErr error
	saveErr error
	saved   bool

	saveCalls  int
	clearCalls int
}

func (f *fakeCredentialRepo) Save(ctx context.Context, user entity.User, token string) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.user, f.token, f.saved = user, token, true

	return nil
}

func (f *fakeCredentialRepo) Load(ctx context.Context) (entity.User, string, error) {
	if f.loadErr != nil {
		return entity.User{}, "", f.loadErr
	}
	if !f.saved {
		return entity.User{}, "", repository.ErrNoCredentials
	}

	return f.user, f.token, nil
}

func (f *fakeCredentialRepo) Clear(ctx context.Context) error {
	f.clearCalls++
	f.saved = false

	return nil
}

// recordingNotifier captures every message in order.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (r *recordingNotifier) Success(message string) {
	r.mu.Lock()
	r.successes = append(r.successes, message)
	r.mu.Unlock()
}

func (r *recordingNotifier) Error(message string) {
	r.mu.Lock()
	r.errors = append(r.errors, message)
	r.mu.Unlock()
}

// stubSession is a minimal usecase.SessionUsecase whose state the test
// sets directly.
type stubSession struct {
	state entity.SessionState
}

func (s *stubSession) Restore(ctx context.Context) error                      { return nil }
func (s *stubSession) Login(ctx context.Context, in usecase.LoginInput) error { return nil }
func (s *stubSession) Signup(ctx context.Context, in usecase.SignupInput) error {
	return nil
}
func (s *stubSession) Logout(ctx context.Context) error { return nil }
func (s *stubSession) ClearError()                      {}
func (s *stubSession) State() entity.SessionState       { return s.state }
func (s *stubSession) CurrentUser() (entity.User, bool) {
	user, _, ok := entity.Credentials(s.state)

	return user, ok
}
func (s *stubSession) Subscribe(listener usecase.SessionListener) {}

// stubCart is a minimal usecase.CartUsecase for checkout tests.
type stubCart struct {
	cart entity.Cart

	clearCalls  int
	clearSilent bool
	clearErr    error
}

func (s *stubCart) Load(ctx context.Context) error { return nil }
func (s *stubCart) AddItem(ctx context.Context, product entity.Product) error {
	return nil
}
func (s *stubCart) SetQuantity(ctx context.Context, productID string, quantity int) error {
	return nil
}
func (s *stubCart) RemoveItem(ctx context.Context, productID string) error { return nil }
func (s *stubCart) Clear(ctx context.Context, silent bool) error {
	s.clearCalls++
	s.clearSilent = silent

	return s.clearErr
}
func (s *stubCart) Reset()                          {}
func (s *stubCart) QuantityOf(productID string) int { return s.cart.QuantityOf(productID) }
func (s *stubCart) Contains(productID string) bool  { return s.cart.Contains(productID) }
func (s *stubCart) Snapshot() entity.Cart           { return s.cart }
func (s *stubCart) Loading() bool                   { return false }
