package repository

import (
	"context"

	"github.com/playtube/playtube-api/internal/domain/entity"
)

type TweetRepository interface {
	Create(ctx context.Context, t *entity.Tweet) error
	GetByID(ctx context.Context, id string) (*entity.Tweet, error)
	UpdateContent(ctx context.Context, id, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Tweet, error)
}
