package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/service"
	"storefront/internal/infra/api"
	infraauth "storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/notify"
	"storefront/internal/infra/persistence/file"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type cliDeps struct {
	fx.In

	Session  usecase.SessionUsecase
	Cart     usecase.CartUsecase
	Checkout usecase.CheckoutUsecase
	Orders   usecase.OrderUsecase
	Catalog  usecase.CatalogUsecase
}

func main() {
	var deps cliDeps
	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		injectGateway(),
		injectUsecase(),
		fx.Invoke(wireSessionListeners),
		fx.Populate(&deps),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	code := run(context.Background(), deps, os.Args[1:])

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStop()
	_ = app.Stop(stopCtx)

	os.Exit(code)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		infraauth.NewTokenHolder,
		func(holder *infraauth.TokenHolder) service.TokenSource { return holder },
		file.NewCredentialStore,
		notify.NewNotifier,
	)
}

func injectGateway() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewClient,
			fx.As(new(gateway.Auth)),
			fx.As(new(gateway.Cart)),
			fx.As(new(gateway.Orders)),
			fx.As(new(gateway.Catalog)),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewSessionService,
		impl.NewCartService,
		impl.NewCheckoutService,
		impl.NewOrderService,
		impl.NewCatalogService,
	)
}

// wireSessionListeners ties the cart to the session so the cart loads
// on sign-in and resets on sign-out.
func wireSessionListeners(session usecase.SessionUsecase, cart usecase.CartUsecase) {
	if listener, ok := cart.(usecase.SessionListener); ok {
		session.Subscribe(listener)
	}
}

func run(ctx context.Context, deps cliDeps, args []string) int {
	if len(args) == 0 {
		usage()

		return 2
	}

	// Restoring first means every command below sees any persisted
	// session, and the cart listener has already reacted to it.
	if err := deps.Session.Restore(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	switch args[0] {
	case "login":
		return runLogin(ctx, deps, args[1:])
	case "signup":
		return runSignup(ctx, deps, args[1:])
	case "logout":
		return exitCode(deps.Session.Logout(ctx))
	case "whoami":
		return runWhoami(deps)
	case "products":
		return runProducts(ctx, deps)
	case "cart":
		return runCart(ctx, deps, args[1:])
	case "order":
		return runOrder(ctx, deps, args[1:])
	default:
		usage()

		return 2
	}
}

func runLogin(ctx context.Context, deps cliDeps, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: storefront login <email> <password>")

		return 2
	}

	return exitCode(deps.Session.Login(ctx, usecase.LoginInput{Email: args[0], Password: args[1]}))
}

func runSignup(ctx context.Context, deps cliDeps, args []string) int {
	if len(args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: storefront signup <first-name> <last-name> <email> <password>")

		return 2
	}

	return exitCode(deps.Session.Signup(ctx, usecase.SignupInput{
		FirstName: args[0],
		LastName:  args[1],
		Email:     args[2],
		Password:  args[3],
	}))
}

func runWhoami(deps cliDeps) int {
	user, ok := deps.Session.CurrentUser()
	if !ok {
		fmt.Println("Not signed in.")

		return 1
	}

	fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)

	return 0
}

func runProducts(ctx context.Context, deps cliDeps) int {
	products, err := deps.Catalog.ListProducts(ctx)
	if err != nil {
		return 1
	}

	for _, product := range products {
		marker := " "
		if deps.Cart.Contains(product.ID) {
			marker = "*"
		}
		fmt.Printf("%s %-8s %-24s %10.2f  %s\n", marker, product.ID, product.Name, product.Price, product.Description)
	}

	return 0
}

func runCart(ctx context.Context, deps cliDeps, args []string) int {
	if len(args) == 0 || args[0] == "show" {
		if err := deps.Cart.Load(ctx); err != nil {
			return 1
		}
		printCart(deps.Cart.Snapshot())

		return 0
	}

	switch args[0] {
	case "add":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: storefront cart add <product-id>")

			return 2
		}

		product, code := findProduct(ctx, deps, args[1])
		if code != 0 {
			return code
		}

		return exitCode(deps.Cart.AddItem(ctx, product))
	case "set":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: storefront cart set <product-id> <quantity>")

			return 2
		}

		quantity, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, "quantity must be a number")

			return 2
		}

		return exitCode(deps.Cart.SetQuantity(ctx, args[1], quantity))
	case "remove":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: storefront cart remove <product-id>")

			return 2
		}

		return exitCode(deps.Cart.RemoveItem(ctx, args[1]))
	case "clear":
		return exitCode(deps.Cart.Clear(ctx, false))
	default:
		usage()

		return 2
	}
}

func runOrder(ctx context.Context, deps cliDeps, args []string) int {
	if len(args) == 0 {
		usage()

		return 2
	}

	switch args[0] {
	case "place":
		if len(args) < 4 {
			fmt.Fprintln(os.Stderr, "usage: storefront order place <first-name> <last-name> <address...>")

			return 2
		}

		order, err := deps.Checkout.Submit(ctx, usecase.ShippingInput{
			FirstName: args[1],
			LastName:  args[2],
			Address:   strings.Join(args[3:], " "),
		})
		if err != nil {
			return 1
		}
		fmt.Printf("Order %s placed, total %.2f\n", order.Number, order.TotalAmount)

		return 0
	case "list":
		orders, err := deps.Orders.FetchOrders(ctx)
		if err != nil {
			return 1
		}
		printOrders(orders)

		return 0
	case "cancel":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: storefront order cancel <order-id>")

			return 2
		}

		return exitCode(deps.Orders.Cancel(ctx, args[1]))
	default:
		usage()

		return 2
	}
}

// findProduct resolves a catalog id so the cart can report the product
// by name.
func findProduct(ctx context.Context, deps cliDeps, productID string) (entity.Product, int) {
	products, err := deps.Catalog.ListProducts(ctx)
	if err != nil {
		return entity.Product{}, 1
	}

	for _, product := range products {
		if product.ID == productID {
			return product, 0
		}
	}
	fmt.Fprintf(os.Stderr, "unknown product %q\n", productID)

	return entity.Product{}, 1
}

func printCart(cart entity.Cart) {
	if cart.IsEmpty() {
		fmt.Println("Your cart is empty.")

		return
	}

	for _, line := range cart.Items {
		fmt.Printf("%-8s %-24s x%-3d %10.2f\n", line.ProductID, line.Name, line.Quantity, line.UnitPrice)
	}
	fmt.Printf("%d items, total %.2f\n", cart.TotalItems, cart.TotalAmount)
}

func printOrders(orders []entity.Order) {
	if len(orders) == 0 {
		fmt.Println("No orders yet.")

		return
	}

	for _, order := range orders {
		fmt.Printf("%-12s %-10s %10.2f  placed %s  delivery by %s\n",
			order.Number, order.Status, order.TotalAmount,
			order.CreatedAt.Format("2006-01-02"),
			order.ExpectedDelivery.Format("2006-01-02"))
		for _, item := range order.Items {
			fmt.Printf("    %s x%d\n", item.ProductName, item.Quantity)
		}
	}
}

func exitCode(err error) int {
	if err != nil {
		return 1
	}

	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: storefront <command>

  login <email> <password>
  signup <first-name> <last-name> <email> <password>
  logout
  whoami
  products
  cart [show]
  cart add <product-id>
  cart set <product-id> <quantity>
  cart remove <product-id>
  cart clear
  order place <first-name> <last-name> <address...>
  order list
  order cancel <order-id>`)
}
