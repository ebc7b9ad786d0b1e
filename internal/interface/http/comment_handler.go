package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube/playtube-api/internal/application"
	"github.com/playtube/playtube-api/pkg/response"
)

type CommentHandler struct {
	Comments *application.CommentService
}

func NewCommentHandler(comments *application.CommentService) *CommentHandler {
	return &CommentHandler{Comments: comments}
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) Add(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}
	comment, err := h.Comments.Add(c.Request.Context(), userID(c), c.Param("videoId"), req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, comment, "comment added", nil)
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}
	comment, err := h.Comments.Update(c.Request.Context(), userID(c), c.Param("commentId"), req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, comment, "comment updated", nil)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.Comments.Delete(c.Request.Context(), userID(c), c.Param("commentId")); err != nil {
		respondErr(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "comment deleted", nil)
}

func (h *CommentHandler) ListByVideo(c *gin.Context) {
	limit, offset := pagination(c)
	comments, err := h.Comments.ListByVideo(c.Request.Context(), c.Param("videoId"), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, comments, "video comments", gin.H{"limit": limit, "offset": offset})
}
