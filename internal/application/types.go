package application

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/playtube/playtube-api/internal/domain/entity"
	"github.com/playtube/playtube-api/internal/domain/repository"
	"github.com/playtube/playtube-api/pkg/apperrors"
)

// Upload is an inbound multipart file handed down from the transport layer.
type Upload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// TokenPair is the session token pair returned by login and refresh. The
// transport layer turns it into cookies; services only deal in plain strings.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// EmailQueue is the async mail boundary (RabbitPublisher in production).
type EmailQueue interface {
	PublishJSON(ctx context.Context, body any) error
}

// VideoIndexer is the search boundary (Elasticsearch-backed in production).
type VideoIndexer interface {
	Index(ctx context.Context, v *entity.Video) error
	Delete(ctx context.Context, videoID string) error
	Search(ctx context.Context, query string, limit, offset int) ([]string, error)
}

// storeErr classifies a repository failure: the storage sentinels map onto
// their API error classes, anything else is a dependency failure.
func storeErr(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NotFound(resource + " not found")
	case errors.Is(err, repository.ErrDuplicate):
		return apperrors.Conflict(resource, "unique field", "duplicate")
	default:
		return apperrors.Dependency("storage failure", err)
	}
}
