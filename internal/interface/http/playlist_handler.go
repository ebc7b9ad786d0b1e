package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube/playtube-api/internal/application"
	"github.com/playtube/playtube-api/pkg/response"
)

type PlaylistHandler struct {
	Playlists *application.PlaylistService
}

func NewPlaylistHandler(playlists *application.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{Playlists: playlists}
}

type playlistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *PlaylistHandler) Create(c *gin.Context) {
	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}
	p, err := h.Playlists.Create(c.Request.Context(), userID(c), req.Name, req.Description)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "playlist created", nil)
}

func (h *PlaylistHandler) Get(c *gin.Context) {
	p, err := h.Playlists.Get(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "playlist", nil)
}

func (h *PlaylistHandler) Update(c *gin.Context) {
	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}
	p, err := h.Playlists.Update(c.Request.Context(), userID(c), c.Param("playlistId"), req.Name, req.Description)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "playlist updated", nil)
}

func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.Playlists.Delete(c.Request.Context(), userID(c), c.Param("playlistId")); err != nil {
		respondErr(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "playlist deleted", nil)
}

func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	playlists, err := h.Playlists.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, playlists, "user playlists", nil)
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	p, err := h.Playlists.AddVideo(c.Request.Context(), userID(c), c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "video added to playlist", nil)
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	p, err := h.Playlists.RemoveVideo(c.Request.Context(), userID(c), c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "video removed from playlist", nil)
}
