package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/playtube/playtube-api/internal/interface/http"
	"github.com/playtube/playtube-api/internal/interface/middleware"
	"github.com/playtube/playtube-api/pkg/helpers"
)

type TweetModule struct {
	Handler *handlers.TweetHandler
	JWT     *helpers.JWTManager
}

func NewTweetModule(h *handlers.TweetHandler, jwt *helpers.JWTManager) *TweetModule {
	return &TweetModule{Handler: h, JWT: jwt}
}

func (m *TweetModule) Register(rg *gin.RouterGroup) {
	tweets := rg.Group("/tweets")
	tweets.GET("/user/:userId", m.Handler.ListByUser)

	auth := tweets.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.POST("", m.Handler.Create)
		auth.PATCH("/:tweetId", m.Handler.Update)
		auth.DELETE("/:tweetId", m.Handler.Delete)
	}
}
