package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"KabisaBizSuite/internal/appmanager"
	"KabisaBizSuite/internal/cache"
	"KabisaBizSuite/internal/config"
	"KabisaBizSuite/internal/recordstore"
)

// initStore selects the record store backend: a local Postgres pool when
// DB_* vars are set, otherwise the remote REST store.
func initStore(ctx context.Context) (recordstore.Store, error) {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")
	if user != "" && pass != "" && host != "" && port != "" && name != "" {
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, port, name)
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		appmanager.SetPgxPool(pool)
		pg := recordstore.NewPGStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return pg, nil
	}

	baseURL := os.Getenv("RECORDSTORE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("no record store configured: set DB_* or RECORDSTORE_URL")
	}
	return recordstore.NewRESTStore(baseURL, os.Getenv("RECORDSTORE_API_KEY")), nil
}

func main() {
	// Load .env for local dev
	_ = godotenv.Load("../.env")

	ctx := context.Background()
	store, err := initStore(ctx)
	if err != nil {
		log.Fatal("failed to initialize record store:", err)
	}
	appmanager.SetStore(store)

	tc := cache.New(store, time.Duration(config.DefaultCacheTTLSeconds)*time.Second)
	appmanager.SetCache(tc)

	manager := appmanager.NewAppManager()

	// Load service configs from YAML
	servicesCfg, err := appmanager.LoadServiceSequence("../services.yaml")
	if err != nil {
		log.Fatal("failed to load service sequence:", err)
	}

	// Automatically register all services
	manager.AutoRegisterServices(servicesCfg)

	// Start all services
	if err := manager.StartAll(); err != nil {
		log.Fatal("failed to start:", err)
	}

	// Graceful shutdown handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	// Stop all services
	if err := manager.StopAll(); err != nil {
		log.Fatal("failed to stop:", err)
	}
}
