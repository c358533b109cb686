package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/navstation/navstation/config"
	handlers "github.com/navstation/navstation/internal/interface/http"
	"github.com/navstation/navstation/internal/interface/middleware"
)

// AuthModule mounts the public credential routes. Register and login share
// the strict per-origin auth limiter, independent of the general API counter,
// so credential stuffing is throttled before any hashing or store work.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Redis   *redis.Client
	Cfg     *config.Config
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client, cfg *config.Config) *AuthModule {
	return &AuthModule{Handler: h, Redis: rdb, Cfg: cfg}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	authLimiter := middleware.RateLimit(m.Redis, m.Cfg.AuthRateMax, m.Cfg.AuthRateWindow, middleware.KeyByIPScoped("auth"), nil)

	rg.POST("/register", authLimiter, m.Handler.Register)
	rg.POST("/login", authLimiter, m.Handler.Login)
}
