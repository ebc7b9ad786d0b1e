package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/playtube/playtube-api/internal/interface/http"
	"github.com/playtube/playtube-api/internal/interface/middleware"
	"github.com/playtube/playtube-api/pkg/helpers"
)

type SubscriptionModule struct {
	Handler *handlers.SubscriptionHandler
	JWT     *helpers.JWTManager
}

func NewSubscriptionModule(h *handlers.SubscriptionHandler, jwt *helpers.JWTManager) *SubscriptionModule {
	return &SubscriptionModule{Handler: h, JWT: jwt}
}

func (m *SubscriptionModule) Register(rg *gin.RouterGroup) {
	subs := rg.Group("/subscriptions")
	subs.GET("/c/:channelId", m.Handler.ListSubscribers)

	auth := subs.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.POST("/c/:channelId", m.Handler.Toggle)
		auth.GET("/u", m.Handler.ListSubscribedChannels)
	}
}
