package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/playtube/playtube-api/internal/interface/http"
	"github.com/playtube/playtube-api/internal/interface/middleware"
	"github.com/playtube/playtube-api/pkg/helpers"
)

type VideoModule struct {
	Handler *handlers.VideoHandler
	JWT     *helpers.JWTManager
}

func NewVideoModule(h *handlers.VideoHandler, jwt *helpers.JWTManager) *VideoModule {
	return &VideoModule{Handler: h, JWT: jwt}
}

func (m *VideoModule) Register(rg *gin.RouterGroup) {
	videos := rg.Group("/videos")

	videos.GET("/search", m.Handler.Search)
	videos.GET("/channel/:username", middleware.OptionalAuth(m.JWT), m.Handler.ListByChannel)
	videos.GET("/:videoId", middleware.OptionalAuth(m.JWT), m.Handler.Get)

	auth := videos.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.POST("", m.Handler.Publish)
		auth.PATCH("/:videoId", m.Handler.Update)
		auth.DELETE("/:videoId", m.Handler.Delete)
		auth.PATCH("/toggle/publish/:videoId", m.Handler.TogglePublish)
	}
}
