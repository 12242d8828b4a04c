package deps

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ribbonclub/ribbon_api/config"
	"github.com/ribbonclub/ribbon_api/internal/db"
	"github.com/ribbonclub/ribbon_api/util/cache"
)

type Dependencies struct {
	DB    *db.DB
	Cache *cache.Cache
	Log   *zap.Logger
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Panicln("failed to build logger", "error", err)
	}

	redisCache := cache.New(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		logger.Warn("redis unreachable, like counters fall back to the database", zap.Error(err))
	}

	deps := Dependencies{
		DB:    database,
		Cache: redisCache,
		Log:   logger,
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}
