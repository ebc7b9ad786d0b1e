package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/playtube/playtube-api/internal/application"
	"github.com/playtube/playtube-api/pkg/apperrors"
	"github.com/playtube/playtube-api/pkg/response"
	"github.com/playtube/playtube-api/pkg/validation"
)

// respondErr maps a service error onto the response envelope. Unclassified
// errors collapse to a generic 500 so internals never leak.
func respondErr(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		response.Error[any](c, appErr.Status, appErr.Message, appErr.Code)
		return
	}
	response.Error[any](c, apperrors.HTTPStatus(err), apperrors.Message(err), nil)
}

func bindErr(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}

// formUpload pulls one multipart file out of the request. The returned close
// func is nil-safe; a missing file yields (nil, noop, nil) so optional files
// need no special casing.
func formUpload(c *gin.Context, field string) (*application.Upload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	up := &application.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Reader:      f,
	}
	return up, func() { _ = f.Close() }, nil
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

func userID(c *gin.Context) string {
	return c.GetString("userID")
}
