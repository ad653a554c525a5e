package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jcmexdev/freshmart/internal/cart"
	"github.com/jcmexdev/freshmart/internal/catalog"
	"github.com/jcmexdev/freshmart/internal/httpx"
	"github.com/jcmexdev/freshmart/internal/kvstore"
	"github.com/jcmexdev/freshmart/internal/kvstore/redisstore"
	"github.com/jcmexdev/freshmart/internal/kvstore/sqlite"
	"github.com/jcmexdev/freshmart/internal/orders"
	"github.com/jcmexdev/freshmart/internal/pkg/config"
	"github.com/jcmexdev/freshmart/internal/pkg/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.InitLogger(cfg.LogLevel)

	storage, cleanup := openStorage(cfg)
	defer cleanup()

	cat := catalog.Default()

	cartStore := cart.NewStore(cat, storage)
	cartStore.SetOnChange(func(totalQuantity int) {
		slog.Debug("cart badge updated", "total_quantity", totalQuantity)
	})
	cartStore.Load(context.Background())

	book := orders.NewBook(storage)

	handler := httpx.NewHandler(cat, cartStore, book, storage)
	router := httpx.NewRouter(handler, cfg.AdminPassword)

	slog.Info("storefront running", "addr", cfg.HTTPAddr, "storage", cfg.StorageBackend)
	if err := http.ListenAndServe(cfg.HTTPAddr, router); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}

func openStorage(cfg config.Config) (kvstore.Store, func()) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		store := redisstore.New(cfg.RedisAddr, "freshmart")
		return store, func() { _ = store.Close() }
	case config.BackendMemory:
		return kvstore.NewMemory(), func() {}
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			log.Fatalf("could not create data directory: %v", err)
		}
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("could not open sqlite storage: %v", err)
		}
		return store, func() { _ = store.Close() }
	default:
		log.Fatalf("unknown storage backend %q", cfg.StorageBackend)
		return nil, nil
	}
}
