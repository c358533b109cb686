package router

import (
	"github.com/navstation/navstation/internal/application"
	"github.com/navstation/navstation/internal/container"
	pginfra "github.com/navstation/navstation/internal/infrastructure/postgres"
	handlers "github.com/navstation/navstation/internal/interface/http"
	"github.com/navstation/navstation/internal/interface/middleware"
	"github.com/navstation/navstation/internal/router/modules"
)

// InitModules wires repositories, services, and handlers from the container
// and registers every feature module. The general API limiter is installed on
// the whole /api group here, ahead of all module routes.
func InitModules(reg *Registry, c *container.Container) {
	reg.Use(middleware.RateLimit(c.Redis, c.Cfg.APIRateMax, c.Cfg.APIRateWindow, middleware.KeyByIP(), nil))

	users := pginfra.NewUserRepository(c.PGPool)
	links := pginfra.NewLinkRepository(c.PGPool)

	authSvc := application.NewAuthService(users, c.JWT, c.Logger, c.Cfg.BcryptCost)
	linkSvc := application.NewLinkService(links, c.Logger)

	reg.Add(
		modules.NewAuthModule(handlers.NewAuthHandler(authSvc, c.Logger), c.Redis, c.Cfg),
		modules.NewLinkModule(handlers.NewLinkHandler(linkSvc, c.Logger), c.JWT),
	)
}
