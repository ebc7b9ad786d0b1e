package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/playtube/playtube-api/internal/interface/http"
	"github.com/playtube/playtube-api/internal/interface/middleware"
	"github.com/playtube/playtube-api/pkg/helpers"
)

type LikeModule struct {
	Handler *handlers.LikeHandler
	JWT     *helpers.JWTManager
}

func NewLikeModule(h *handlers.LikeHandler, jwt *helpers.JWTManager) *LikeModule {
	return &LikeModule{Handler: h, JWT: jwt}
}

func (m *LikeModule) Register(rg *gin.RouterGroup) {
	likes := rg.Group("/likes")
	likes.Use(middleware.RequireAuth(m.JWT))
	{
		likes.POST("/toggle/v/:videoId", m.Handler.ToggleVideo)
		likes.POST("/toggle/c/:commentId", m.Handler.ToggleComment)
		likes.POST("/toggle/t/:tweetId", m.Handler.ToggleTweet)
		likes.GET("/videos", m.Handler.ListLikedVideos)
	}
}
