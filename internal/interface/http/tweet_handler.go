package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube/playtube-api/internal/application"
	"github.com/playtube/playtube-api/pkg/response"
)

type TweetHandler struct {
	Tweets *application.TweetService
}

func NewTweetHandler(tweets *application.TweetService) *TweetHandler {
	return &TweetHandler{Tweets: tweets}
}

type tweetRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *TweetHandler) Create(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}
	t, err := h.Tweets.Create(c.Request.Context(), userID(c), req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "tweet created", nil)
}

func (h *TweetHandler) Update(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}
	t, err := h.Tweets.Update(c.Request.Context(), userID(c), c.Param("tweetId"), req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "tweet updated", nil)
}

func (h *TweetHandler) Delete(c *gin.Context) {
	if err := h.Tweets.Delete(c.Request.Context(), userID(c), c.Param("tweetId")); err != nil {
		respondErr(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "tweet deleted", nil)
}

func (h *TweetHandler) ListByUser(c *gin.Context) {
	tweets, err := h.Tweets.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, tweets, "user tweets", nil)
}
