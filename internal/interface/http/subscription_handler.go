package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube/playtube-api/internal/application"
	"github.com/playtube/playtube-api/pkg/response"
)

type SubscriptionHandler struct {
	Subs *application.SubscriptionService
}

func NewSubscriptionHandler(subs *application.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{Subs: subs}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	subscribed, err := h.Subs.Toggle(c.Request.Context(), userID(c), c.Param("channelId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subscribed": subscribed}, "subscription toggled", nil)
}

func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.Subs.ListSubscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, subs, "subscribers", nil)
}

func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	channels, err := h.Subs.ListSubscribedChannels(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, channels, "subscribed channels", nil)
}
