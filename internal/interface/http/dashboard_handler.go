package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube/playtube-api/internal/application"
	"github.com/playtube/playtube-api/pkg/response"
)

type DashboardHandler struct {
	Dashboard *application.DashboardService
}

func NewDashboardHandler(dashboard *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.Dashboard.Stats(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, "channel stats", nil)
}

func (h *DashboardHandler) Videos(c *gin.Context) {
	limit, offset := pagination(c)
	videos, err := h.Dashboard.ChannelVideos(c.Request.Context(), userID(c), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, videos, "channel videos", gin.H{"limit": limit, "offset": offset})
}
