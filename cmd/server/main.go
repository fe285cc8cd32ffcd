package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/storefront/internal/adapter/country"
	"github.com/rl1809/storefront/internal/adapter/handler"
	"github.com/rl1809/storefront/internal/adapter/id"
	"github.com/rl1809/storefront/internal/adapter/storage"
	"github.com/rl1809/storefront/internal/config"
	"github.com/rl1809/storefront/internal/core/store"
	"github.com/rl1809/storefront/internal/pkg/clock"
	"github.com/rl1809/storefront/internal/port"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, closeKV, err := buildKV(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer closeKV()

	var catalogOpts []store.CatalogOption
	if cfg.Catalog.StrictStock {
		catalogOpts = append(catalogOpts, store.WithStrictStock())
	}

	ids := id.NewUUIDGenerator()
	catalog := store.NewCatalogStore(kv, catalogOpts...)
	ledger := store.NewInvoiceLedger(kv, ids, clock.NewRealClock())
	cart := store.NewCartStore(kv, catalog, ledger)
	auth := store.NewAuthStore(kv, ids)

	for _, load := range []func(context.Context) error{catalog.Load, ledger.Load, cart.Load, auth.Load} {
		if err := load(ctx); err != nil {
			logger.Error("failed to load store state", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("stores loaded", "products", len(catalog.Products()), "backend", cfg.Storage.Backend)

	var countries port.CountryValidator
	if cfg.Checkout.ValidateCountry {
		countries = country.NewRESTCountriesValidator(nil, cfg.Checkout.CountryAPIBaseURL)
	}

	h := handler.NewHTTPHandler(catalog, cart, ledger, auth, countries, logger)
	mux := http.NewServeMux()
	h.Register(mux)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", "error", err)
	}
	logger.Info("HTTP server stopped")
}

// buildKV selects and connects the durable store backend.
func buildKV(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (port.KV, func(), error) {
	switch cfg.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		logger.Info("connected to redis", "addr", cfg.RedisAddr)
		return storage.NewRedisAdapter(rdb), func() { rdb.Close() }, nil

	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		adapter := storage.NewMySQLAdapter(db)
		if err := adapter.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("connected to mysql")
		return adapter, func() { db.Close() }, nil

	default:
		return storage.NewMemory(), func() {}, nil
	}
}
