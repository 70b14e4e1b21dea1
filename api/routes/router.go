package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hashimadil/storefront-backend/api/controllers"
	"github.com/hashimadil/storefront-backend/api/middleware"
	authsvc "github.com/hashimadil/storefront-backend/internal/auth"
	cartsvc "github.com/hashimadil/storefront-backend/internal/cart"
	"github.com/hashimadil/storefront-backend/internal/catalog"
	"github.com/hashimadil/storefront-backend/internal/drops"
	ordersvc "github.com/hashimadil/storefront-backend/internal/orders"
	"github.com/hashimadil/storefront-backend/internal/settings"
	"github.com/hashimadil/storefront-backend/internal/users"
	"github.com/hashimadil/storefront-backend/pkg/auth/session"
	"github.com/hashimadil/storefront-backend/pkg/config"
	"github.com/hashimadil/storefront-backend/pkg/db"
	"github.com/hashimadil/storefront-backend/pkg/enums"
	"github.com/hashimadil/storefront-backend/pkg/logger"
	redisclient "github.com/hashimadil/storefront-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config *config.Config
	Logger *logger.Logger

	DB    db.Pinger
	Redis redisclient.Pinger

	Sessions session.SessionChecker
	Gatherer prometheus.Gatherer

	Auth     authsvc.Service
	Catalog  catalog.Service
	Orders   ordersvc.Service
	Cart     cartsvc.Service
	Settings settings.Service
	Drops    drops.Service
	Users    *users.Repository
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, controllers.ReadinessChecks{
			DB: func(req *http.Request) error {
				return deps.DB.Ping(req.Context())
			},
			Redis: func(req *http.Request) error {
				return deps.Redis.Ping(req.Context())
			},
		}, logg))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	// Legacy entry points from the old server-rendered site.
	r.Get("/login", controllers.LoginRedirect())
	r.Get("/register", controllers.LoginRedirect())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/google", controllers.GoogleLogin(deps.Auth, logg))
			r.Get("/google/callback", controllers.GoogleCallback(deps.Auth, cfg, logg))
			r.Post("/login", controllers.PasswordAuthDisabled())
			r.Post("/register", controllers.PasswordAuthDisabled())

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))
				r.Get("/me", controllers.Me(deps.Auth, logg))
				r.Post("/logout", controllers.Logout(deps.Auth, cfg, logg))
			})
		})

		r.Get("/products", controllers.ListProducts(deps.Catalog, logg))
		r.Get("/products/{id}", controllers.GetProduct(deps.Catalog, logg))
		r.Get("/store/status", controllers.GetStoreStatus(deps.Settings, logg))
		r.Post("/drop-signups", controllers.CreateDropSignup(deps.Drops, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(deps.Cart, logg))
				r.Post("/items", controllers.AddCartItem(deps.Cart, logg))
				r.Delete("/items", controllers.RemoveCartItem(deps.Cart, logg))
				r.Post("/clear", controllers.ClearCart(deps.Cart, logg))
			})
			r.Post("/checkout", controllers.Checkout(deps.Cart, logg))
			r.Post("/orders", controllers.CreateOrder(deps.Orders, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))
			r.Use(middleware.RequireRole(enums.UserRoleAdmin.String(), logg))

			r.Get("/users", controllers.AdminListUsers(deps.Users, logg))

			r.Get("/admin/products", controllers.AdminListProducts(deps.Catalog, logg))
			r.Post("/products", controllers.AdminCreateProduct(deps.Catalog, logg))
			r.Put("/products/{id}", controllers.AdminUpdateProduct(deps.Catalog, logg))
			r.Delete("/products/{id}", controllers.AdminDeleteProduct(deps.Catalog, logg))

			r.Get("/orders", controllers.AdminListOrders(deps.Orders, logg))
			r.Get("/order-items", controllers.AdminListOrderItems(deps.Orders, logg))
			r.Put("/orders/{id}/status", controllers.AdminUpdateOrderStatus(deps.Orders, logg))
			r.Delete("/orders/{id}", controllers.AdminDeleteOrder(deps.Orders, logg))

			r.Put("/store/status", controllers.AdminUpdateStoreStatus(deps.Settings, logg))
			r.Get("/drop-signups", controllers.AdminListDropSignups(deps.Drops, logg))
		})
	})

	return r
}
