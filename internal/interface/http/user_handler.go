package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/playtube/playtube-api/internal/application"
	"github.com/playtube/playtube-api/pkg/helpers"
	"github.com/playtube/playtube-api/pkg/response"
)

// UserHandler is the transport boundary for the identity core plus the two
// derived channel read models. Cookies are its concern alone; services only
// see and return plain token strings.
type UserHandler struct {
	Sessions *application.SessionService
	Channels *application.ChannelService
	Logger   *logrus.Logger
	Cookies  *helpers.CookieManager
}

func NewUserHandler(sessions *application.SessionService, channels *application.ChannelService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{
		Sessions: sessions,
		Channels: channels,
		Logger:   logger,
		Cookies:  helpers.NewCookie(cookieDomain, cookieSecure),
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	avatar, closeAvatar, err := formUpload(c, "avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid avatar upload", nil)
		return
	}
	defer closeAvatar()
	cover, closeCover, err := formUpload(c, "coverImage")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid cover image upload", nil)
		return
	}
	defer closeCover()

	u, err := h.Sessions.Register(c.Request.Context(), application.RegisterInput{
		Email:    c.PostForm("email"),
		Username: c.PostForm("username"),
		FullName: c.PostForm("fullName"),
		Password: c.PostForm("password"),
		Avatar:   avatar,
		Cover:    cover,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u, "user registered", nil)
}

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required,pwd"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}

	u, pair, err := h.Sessions.Login(c.Request.Context(), application.LoginInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{
		"user":         u,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "login successful", gin.H{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.Sessions.Logout(c.Request.Context(), userID(c)); err != nil {
		respondErr(c, err)
		return
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

func (h *UserHandler) Refresh(c *gin.Context) {
	presented, _ := c.Cookie("refreshToken")
	if presented == "" {
		// Fall back to an explicit body field for non-browser clients.
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = c.ShouldBindJSON(&body)
		presented = body.RefreshToken
	}

	pair, err := h.Sessions.Refresh(c.Request.Context(), presented)
	if err != nil {
		respondErr(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "token refreshed", gin.H{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,pwd"`
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}
	if err := h.Sessions.ChangePassword(c.Request.Context(), userID(c), req.OldPassword, req.NewPassword); err != nil {
		respondErr(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"changed": true}, "password changed", nil)
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	u, err := h.Sessions.CurrentUser(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "current user", nil)
}

type updateAccountRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr(c, err)
		return
	}
	u, err := h.Sessions.UpdateAccount(c.Request.Context(), userID(c), req.FullName, req.Email)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "account updated", nil)
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	up, closeUp, err := formUpload(c, "avatar")
	if err != nil || up == nil {
		response.Error[any](c, http.StatusBadRequest, "avatar file is required", nil)
		return
	}
	defer closeUp()

	u, err := h.Sessions.UpdateAvatar(c.Request.Context(), userID(c), up)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "avatar updated", nil)
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	up, closeUp, err := formUpload(c, "coverImage")
	if err != nil || up == nil {
		response.Error[any](c, http.StatusBadRequest, "cover image file is required", nil)
		return
	}
	defer closeUp()

	u, err := h.Sessions.UpdateCoverImage(c.Request.Context(), userID(c), up)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "cover image updated", nil)
}

func (h *UserHandler) ChannelProfile(c *gin.Context) {
	profile, err := h.Channels.GetChannelProfile(c.Request.Context(), c.Param("username"), userID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile, "channel profile", nil)
}

func (h *UserHandler) WatchHistory(c *gin.Context) {
	history, err := h.Channels.GetWatchHistory(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, history, "watch history", nil)
}
