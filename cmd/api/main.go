package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/hashimadil/storefront-backend/api/routes"
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
	"github.com/hashimadil/storefront-backend/pkg/googleauth"
	"github.com/hashimadil/storefront-backend/pkg/logger"
	"github.com/hashimadil/storefront-backend/pkg/metrics"
	"github.com/hashimadil/storefront-backend/pkg/migrate"
	"github.com/hashimadil/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		_ = dbClient.Close()
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	// Closed together on the way out so each failure is reported, not just
	// the first.
	closeAll := func() {
		closeErr := multierr.Combine(dbClient.Close(), redisClient.Close())
		if closeErr != nil {
			logg.Error(context.Background(), "error closing resources", closeErr)
		}
	}
	defer closeAll()

	// os.Exit skips deferred calls, so failure paths close explicitly.
	fatal := func(msg string, err error) {
		logg.Error(context.Background(), msg, err)
		closeAll()
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		fatal("failed to create session manager", err)
	}

	googleClient, err := googleauth.NewClient(cfg.Google)
	if err != nil {
		fatal("failed to create google oauth client", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)

	userRepo := users.NewRepository(dbClient.DB())
	productRepo := catalog.NewRepository(dbClient.DB())
	orderRepo := ordersvc.NewRepository(dbClient.DB())
	signupRepo := drops.NewRepository(dbClient.DB())

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:       userRepo,
		Google:         googleClient,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		AdminEmail:     cfg.Storefront.AdminEmail,
	})
	if err != nil {
		fatal("failed to create auth service", err)
	}

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Repo: productRepo,
		Tx:   dbClient,
	})
	if err != nil {
		fatal("failed to create catalog service", err)
	}

	ordersService, err := ordersvc.NewService(ordersvc.ServiceParams{
		Repo:    orderRepo,
		Tx:      dbClient,
		Metrics: checkoutMetrics,
	})
	if err != nil {
		fatal("failed to create orders service", err)
	}

	settingsService, err := settings.NewService(redisClient, cfg.Storefront.StoreOpen)
	if err != nil {
		fatal("failed to create settings service", err)
	}

	cartStore := cartsvc.NewMemoryStore()
	if cfg.Features.RedisCart {
		cartStore, err = cartsvc.NewRedisStore(redisClient, cfg.Storefront.CartTTL)
		if err != nil {
			fatal("failed to create redis cart store", err)
		}
	}

	cartService, err := cartsvc.NewService(cartsvc.ServiceParams{
		Store:    cartStore,
		Products: catalogService,
		Orders:   ordersService,
		Status:   settingsService,
		Metrics:  checkoutMetrics,
	})
	if err != nil {
		fatal("failed to create cart service", err)
	}

	dropsService, err := drops.NewService(signupRepo)
	if err != nil {
		fatal("failed to create drops service", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			DB:       dbClient,
			Redis:    redisClient,
			Sessions: sessionManager,
			Gatherer: registry,
			Auth:     authService,
			Catalog:  catalogService,
			Orders:   ordersService,
			Cart:     cartService,
			Settings: settingsService,
			Drops:    dropsService,
			Users:    userRepo,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			closeAll()
			os.Exit(1)
		}
	case sig := <-shutdown:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
