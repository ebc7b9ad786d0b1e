package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/playtube/playtube-api/internal/interface/http"
	"github.com/playtube/playtube-api/internal/interface/middleware"
	"github.com/playtube/playtube-api/pkg/helpers"
)

type CommentModule struct {
	Handler *handlers.CommentHandler
	JWT     *helpers.JWTManager
}

func NewCommentModule(h *handlers.CommentHandler, jwt *helpers.JWTManager) *CommentModule {
	return &CommentModule{Handler: h, JWT: jwt}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	comments := rg.Group("/comments")
	comments.GET("/:videoId", m.Handler.ListByVideo)

	auth := comments.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.POST("/:videoId", m.Handler.Add)
		auth.PATCH("/c/:commentId", m.Handler.Update)
		auth.DELETE("/c/:commentId", m.Handler.Delete)
	}
}
