package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/navstation/navstation/config"
	"github.com/navstation/navstation/pkg/helpers"
)

// Container carries the process-lifetime dependencies. It is constructed once
// in main and passed down explicitly; nothing reads it through package state.
type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	PGPool *pgxpool.Pool
	Redis  *redis.Client // nil when no redis is configured
	JWT    *helpers.JWTManager
}

func New(cfg *config.Config, logger *logrus.Logger, pool *pgxpool.Pool, rdb *redis.Client, jwt *helpers.JWTManager) *Container {
	return &Container{Cfg: cfg, Logger: logger, PGPool: pool, Redis: rdb, JWT: jwt}
}

// Close releases store handles on shutdown.
func (c *Container) Close() {
	if c.PGPool != nil {
		c.PGPool.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
