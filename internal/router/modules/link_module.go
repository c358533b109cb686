package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/navstation/navstation/internal/interface/http"
	"github.com/navstation/navstation/internal/interface/middleware"
	"github.com/navstation/navstation/pkg/helpers"
)

// LinkModule mounts the bookmark routes behind the access guard.
type LinkModule struct {
	Handler *handlers.LinkHandler
	JWT     *helpers.JWTManager
}

func NewLinkModule(h *handlers.LinkHandler, jwt *helpers.JWTManager) *LinkModule {
	return &LinkModule{Handler: h, JWT: jwt}
}

func (m *LinkModule) Register(rg *gin.RouterGroup) {
	links := rg.Group("/links")
	links.Use(middleware.Auth(m.JWT))
	{
		links.GET("", m.Handler.List)
		links.POST("", m.Handler.Create)
		links.DELETE("/:id", m.Handler.Delete)
	}
}
