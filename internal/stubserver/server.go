package stubserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Server is a self-contained stand-in for the storefront backend. It
// speaks the same envelope protocol the client expects and keeps all
// state in memory, which makes it suitable both as a local dev backend
// and as an in-process fixture for integration tests.
type Server struct {
	cfg    config.StubConfig
	echo   *echo.Echo
	store  *store
	tokens *tokenService
	logger *slog.Logger
}

func NewServer(cfg config.StubConfig, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomiddleware.Recover())

	s := &Server{
		cfg:    cfg,
		echo:   e,
		store:  newStore(seedProducts()),
		tokens: newTokenService(cfg),
		logger: logger,
	}
	e.Use(s.requestLog)
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")

	api.POST("/auth/signup", s.handleSignup)
	api.POST("/auth/login", s.handleLogin)
	api.GET("/products", s.handleListProducts)

	authed := api.Group("", s.requireAuth)
	authed.GET("/auth/profile", s.handleProfile)
	authed.GET("/cart", s.handleGetCart)
	authed.POST("/cart/add", s.handleAddToCart)
	authed.PUT("/cart/item/:id", s.handleUpdateCartItem)
	authed.DELETE("/cart/item/:id", s.handleRemoveCartItem)
	authed.DELETE("/cart/clear", s.handleClearCart)
	authed.POST("/orders", s.handleCreateOrder)
	authed.GET("/orders", s.handleListOrders)
	authed.PATCH("/orders/:id/cancel", s.handleCancelOrder)
}

// Handler exposes the router for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Serve blocks until the listener fails or Shutdown is called.
func (s *Server) Serve() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("stub server listening", slog.String("addr", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
