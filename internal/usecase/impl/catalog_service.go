package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogGateway gateway.Catalog
	notifier       service.Notifier
	logger         *slog.Logger

	mu       sync.Mutex
	products []entity.Product
	lastErr  error
	loading  bool
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	catalogGateway gateway.Catalog,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		catalogGateway: catalogGateway,
		notifier:       notifier,
		logger:         logger,
	}
}

// ListProducts fetches the catalog. On failure the error is held for
// display and the previous listing is left unchanged.
func (srv *catalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	srv.setLoading(true)
	defer srv.setLoading(false)

	products, err := srv.catalogGateway.ListProducts(ctx)
	if err != nil {
		srv.logger.Warn("Failed to fetch products", slog.Any("error", err))
		srv.mu.Lock()
		srv.lastErr = err
		srv.mu.Unlock()
		srv.notifier.Error("Failed to load products. Please try again.")

		return nil, errors.Wrap(err, "list products")
	}

	srv.mu.Lock()
	srv.products = products
	srv.lastErr = nil
	srv.mu.Unlock()

	srv.logger.Debug("Fetched products", slog.Int("count", len(products)))

	return products, nil
}

func (srv *catalogService) Products() []entity.Product {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.products
}

func (srv *catalogService) LastError() error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.lastErr
}

func (srv *catalogService) Loading() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.loading
}

func (srv *catalogService) setLoading(loading bool) {
	srv.mu.Lock()
	srv.loading = loading
	srv.mu.Unlock()
}
