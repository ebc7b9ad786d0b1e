package repository

import (
	"context"

	"github.com/playtube/playtube-api/internal/domain/entity"
)

type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	UpdateContent(ctx context.Context, id, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id string) error
	ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]entity.CommentWithOwner, error)
}
