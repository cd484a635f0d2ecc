package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/zhukovvlad/estimator-go/cmd/internal/cache"
	"github.com/zhukovvlad/estimator-go/cmd/internal/config"
	db "github.com/zhukovvlad/estimator-go/cmd/internal/db/sqlc"
	"github.com/zhukovvlad/estimator-go/cmd/internal/server"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/bulkupload"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/catalog"
	"github.com/zhukovvlad/estimator-go/cmd/internal/services/teams"
	"github.com/zhukovvlad/estimator-go/cmd/pkg/logging"

	_ "github.com/lib/pq"
)

const cacheSweepInterval = time.Minute

func main() {
	logger := logging.GetLogger()
	logger.Info("Starting Estimator API...")

	if err := godotenv.Load(); err != nil {
		logger.Warnf("error loading .env file: %v", err)
	}

	cfg := config.GetConfig()

	conn, err := sql.Open(cfg.Database.Driver, cfg.Database.Source)
	if err != nil {
		logger.Fatalf("error connecting to database: %v", err)
	}
	defer conn.Close()

	if err = conn.Ping(); err != nil {
		logger.Fatalf("error pinging database: %v", err)
	}

	logger.Info("Database connection established")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	searchCache := newSearchCache(ctx, cfg, logger)

	store := db.NewStore(conn)
	catalogService := catalog.NewCatalogService(store, logger)
	uploadService := bulkupload.NewService(store, logger, cfg.Debug())
	searchService := teams.NewSearchService(store, searchCache, cfg.Redis.SearchTTL, logger)

	srv := server.NewServer(store, logger, catalogService, uploadService, searchService, cfg)

	serverAddress := fmt.Sprintf("%s:%s", cfg.Listen.BindIP, cfg.Listen.Port)
	logger.Infof("Starting server on %s", serverAddress)

	if err = srv.Start(serverAddress); err != nil {
		logger.Fatalf("error starting server: %v", err)
	}
}

// newSearchCache выбирает Redis, если задан адрес, иначе in-memory кэш с фоновой очисткой.
func newSearchCache(ctx context.Context, cfg *config.Config, logger *logging.Logger) cache.Cache {
	if cfg.Redis.Address != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, "estimator")
		if err == nil {
			logger.Infof("Кэш поиска команд: Redis %s", cfg.Redis.Address)
			return redisCache
		}
		logger.Warnf("Redis недоступен (%v), используем in-memory кэш", err)
	}

	memoryCache := cache.NewMemoryCache()
	go memoryCache.RunSweeper(ctx, cacheSweepInterval)
	return memoryCache
}
