package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface. The cache it holds
// is only ever trusted immediately after a fetch; every mutation is
// followed by a full reload so server-side pricing recalculation is
// never second-guessed locally.
type cartService struct {
	cartGateway gateway.Cart
	session     usecase.SessionUsecase
	notifier    service.Notifier
	logger      *slog.Logger

	mu         sync.Mutex
	cart       entity.Cart
	generation uint64
	inflight   int
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartGateway gateway.Cart,
	session usecase.SessionUsecase,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartGateway: cartGateway,
		session:     session,
		notifier:    notifier,
		logger:      logger,
		cart:        entity.EmptyCart(),
	}
}

// SessionChanged drives the cart lifecycle from the session store: the
// cart loads while authenticated and resets otherwise.
func (srv *cartService) SessionChanged(ctx context.Context, state entity.SessionState) {
	if entity.IsAuthenticated(state) {
		if err := srv.Load(ctx); err != nil {
			srv.logger.Warn("Initial cart load failed", slog.Any("error", err))
		}

		return
	}

	srv.Reset()
}

// Load replaces the cached projection with a fresh fetch. On failure
// the cache resets to an empty cart; the UI must never see a stale or
// partial cart.
func (srv *cartService) Load(ctx context.Context) error {
	srv.begin()
	defer srv.end()

	generation := srv.currentGeneration()

	cart, err := srv.cartGateway.Fetch(ctx)
	if err != nil {
		srv.logger.Warn("Failed to load cart", slog.Any("error", err))
		srv.replace(generation, entity.EmptyCart())

		return errors.Wrap(err, "load cart")
	}

	srv.replace(generation, cart)

	return nil
}

// AddItem sends a quantity-1 add for the product, then reloads.
// Without an authenticated session it reports an error and performs no
// request.
func (srv *cartService) AddItem(ctx context.Context, product entity.Product) error {
	if !entity.IsAuthenticated(srv.session.State()) {
		srv.notifier.Error("Please sign in to add items to cart")

		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	srv.begin()
	defer srv.end()

	if err := srv.cartGateway.AddItem(ctx, product.ID, 1); err != nil {
		srv.logger.Warn("Failed to add cart item", slog.String("productId", product.ID), slog.Any("error", err))
		srv.notifier.Error("Failed to add item to cart")

		return errors.Wrap(err, "add cart item")
	}

	if err := srv.Load(ctx); err != nil {
		return err
	}

	srv.notifier.Success(fmt.Sprintf("%s added to cart!", product.Name))

	return nil
}

// SetQuantity updates a line's quantity, then reloads. A quantity
// below 1 is equivalent to removing the line.
func (srv *cartService) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return srv.RemoveItem(ctx, productID)
	}

	if !entity.IsAuthenticated(srv.session.State()) {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	srv.begin()
	defer srv.end()

	if err := srv.cartGateway.UpdateItem(ctx, productID, quantity); err != nil {
		srv.logger.Warn("Failed to update cart item", slog.String("productId", productID), slog.Any("error", err))
		srv.notifier.Error("Failed to update cart")

		return errors.Wrap(err, "update cart item")
	}

	return srv.Load(ctx)
}

// RemoveItem removes a line, then reloads.
func (srv *cartService) RemoveItem(ctx context.Context, productID string) error {
	if !entity.IsAuthenticated(srv.session.State()) {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	srv.begin()
	defer srv.end()

	removed, hadLine := srv.Snapshot().Line(productID)

	if err := srv.cartGateway.RemoveItem(ctx, productID); err != nil {
		srv.logger.Warn("Failed to remove cart item", slog.String("productId", productID), slog.Any("error", err))
		srv.notifier.Error("Failed to remove item from cart")

		return errors.Wrap(err, "remove cart item")
	}

	if err := srv.Load(ctx); err != nil {
		return err
	}

	if hadLine {
		srv.notifier.Success(fmt.Sprintf("%s removed from cart!", removed.Name))
	}

	return nil
}

// Clear empties the cart server-side and replaces the cache with an
// empty projection. silent suppresses the success notification, used
// when clearing as a side effect of a placed order.
func (srv *cartService) Clear(ctx context.Context, silent bool) error {
	if !entity.IsAuthenticated(srv.session.State()) {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	srv.begin()
	defer srv.end()

	generation := srv.currentGeneration()

	if err := srv.cartGateway.Clear(ctx); err != nil {
		srv.logger.Warn("Failed to clear cart", slog.Any("error", err))
		if !silent {
			srv.notifier.Error("Failed to clear cart")
		}

		return errors.Wrap(err, "clear cart")
	}

	srv.replace(generation, entity.EmptyCart())
	if !silent {
		srv.notifier.Success("Cart cleared!")
	}

	return nil
}

// Reset drops the local projection without contacting the server and
// invalidates any in-flight reload so its late response is discarded.
func (srv *cartService) Reset() {
	srv.mu.Lock()
	srv.generation++
	srv.cart = entity.EmptyCart()
	srv.mu.Unlock()
}

func (srv *cartService) QuantityOf(productID string) int {
	return srv.Snapshot().QuantityOf(productID)
}

func (srv *cartService) Contains(productID string) bool {
	return srv.Snapshot().Contains(productID)
}

func (srv *cartService) Snapshot() entity.Cart {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.cart
}

func (srv *cartService) Loading() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.inflight > 0
}

func (srv *cartService) begin() {
	srv.mu.Lock()
	srv.inflight++
	srv.mu.Unlock()
}

func (srv *cartService) end() {
	srv.mu.Lock()
	srv.inflight--
	srv.mu.Unlock()
}

func (srv *cartService) currentGeneration() uint64 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.generation
}

// replace installs a fetched projection unless Reset ran while the
// fetch was in flight.
func (srv *cartService) replace(generation uint64, cart entity.Cart) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.generation != generation {
		return
	}
	srv.cart = cart
}
