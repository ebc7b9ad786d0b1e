package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/playtube/playtube-api/internal/application"
	"github.com/playtube/playtube-api/pkg/response"
)

type VideoHandler struct {
	Videos *application.VideoService
}

func NewVideoHandler(videos *application.VideoService) *VideoHandler {
	return &VideoHandler{Videos: videos}
}

func (h *VideoHandler) Publish(c *gin.Context) {
	video, closeVideo, err := formUpload(c, "videoFile")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid video upload", nil)
		return
	}
	defer closeVideo()
	thumb, closeThumb, err := formUpload(c, "thumbnail")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid thumbnail upload", nil)
		return
	}
	defer closeThumb()

	duration, _ := strconv.ParseFloat(c.PostForm("duration"), 64)
	v, err := h.Videos.Publish(c.Request.Context(), userID(c), application.PublishVideoInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Duration:    duration,
		Video:       video,
		Thumbnail:   thumb,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v, "video published", nil)
}

func (h *VideoHandler) Get(c *gin.Context) {
	v, err := h.Videos.Get(c.Request.Context(), c.Param("videoId"), userID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, v, "video", nil)
}

func (h *VideoHandler) ListByChannel(c *gin.Context) {
	limit, offset := pagination(c)
	videos, err := h.Videos.ListByChannel(c.Request.Context(), c.Param("username"), userID(c), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, videos, "channel videos", gin.H{"limit": limit, "offset": offset})
}

func (h *VideoHandler) Update(c *gin.Context) {
	thumb, closeThumb, err := formUpload(c, "thumbnail")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid thumbnail upload", nil)
		return
	}
	defer closeThumb()

	v, err := h.Videos.Update(c.Request.Context(), userID(c), c.Param("videoId"), application.UpdateVideoInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Thumbnail:   thumb,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, v, "video updated", nil)
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.Videos.Delete(c.Request.Context(), userID(c), c.Param("videoId")); err != nil {
		respondErr(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "video deleted", nil)
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	v, err := h.Videos.TogglePublish(c.Request.Context(), userID(c), c.Param("videoId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, v, "publish state toggled", nil)
}

func (h *VideoHandler) Search(c *gin.Context) {
	limit, offset := pagination(c)
	videos, err := h.Videos.Search(c.Request.Context(), c.Query("query"), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, videos, "search results", gin.H{"limit": limit, "offset": offset})
}
