package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube/playtube-api/internal/application"
	"github.com/playtube/playtube-api/internal/domain/entity"
	"github.com/playtube/playtube-api/pkg/response"
)

type LikeHandler struct {
	Likes *application.LikeService
}

func NewLikeHandler(likes *application.LikeService) *LikeHandler {
	return &LikeHandler{Likes: likes}
}

func (h *LikeHandler) ToggleVideo(c *gin.Context) {
	h.toggle(c, entity.LikeTargetVideo, c.Param("videoId"))
}

func (h *LikeHandler) ToggleComment(c *gin.Context) {
	h.toggle(c, entity.LikeTargetComment, c.Param("commentId"))
}

func (h *LikeHandler) ToggleTweet(c *gin.Context) {
	h.toggle(c, entity.LikeTargetTweet, c.Param("tweetId"))
}

func (h *LikeHandler) toggle(c *gin.Context, target entity.LikeTarget, targetID string) {
	liked, count, err := h.Likes.Toggle(c.Request.Context(), userID(c), target, targetID)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"liked": liked, "likeCount": count}, "like toggled", nil)
}

func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	videos, err := h.Likes.ListLikedVideos(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, videos, "liked videos", nil)
}
