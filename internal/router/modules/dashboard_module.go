package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/playtube/playtube-api/internal/interface/http"
	"github.com/playtube/playtube-api/internal/interface/middleware"
	"github.com/playtube/playtube-api/pkg/helpers"
)

type DashboardModule struct {
	Handler *handlers.DashboardHandler
	JWT     *helpers.JWTManager
}

func NewDashboardModule(h *handlers.DashboardHandler, jwt *helpers.JWTManager) *DashboardModule {
	return &DashboardModule{Handler: h, JWT: jwt}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.RequireAuth(m.JWT))
	{
		dashboard.GET("/stats", m.Handler.Stats)
		dashboard.GET("/videos", m.Handler.Videos)
	}
}
