package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/playtube/playtube-api/internal/interface/http"
	"github.com/playtube/playtube-api/internal/interface/middleware"
	"github.com/playtube/playtube-api/pkg/helpers"
)

type PlaylistModule struct {
	Handler *handlers.PlaylistHandler
	JWT     *helpers.JWTManager
}

func NewPlaylistModule(h *handlers.PlaylistHandler, jwt *helpers.JWTManager) *PlaylistModule {
	return &PlaylistModule{Handler: h, JWT: jwt}
}

func (m *PlaylistModule) Register(rg *gin.RouterGroup) {
	playlists := rg.Group("/playlists")
	playlists.GET("/:playlistId", m.Handler.Get)
	playlists.GET("/user/:userId", m.Handler.ListByUser)

	auth := playlists.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.POST("", m.Handler.Create)
		auth.PATCH("/:playlistId", m.Handler.Update)
		auth.DELETE("/:playlistId", m.Handler.Delete)
		auth.PATCH("/add/:videoId/:playlistId", m.Handler.AddVideo)
		auth.PATCH("/remove/:videoId/:playlistId", m.Handler.RemoveVideo)
	}
}
