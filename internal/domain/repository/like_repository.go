package repository

import (
	"context"

	"github.com/playtube/playtube-api/internal/domain/entity"
)

type LikeRepository interface {
	Create(ctx context.Context, l *entity.Like) error
	Delete(ctx context.Context, ownerID string, target entity.LikeTarget, targetID string) error
	Exists(ctx context.Context, ownerID string, target entity.LikeTarget, targetID string) (bool, error)
	CountByTarget(ctx context.Context, target entity.LikeTarget, targetID string) (int64, error)
	ListLikedVideos(ctx context.Context, ownerID string) ([]entity.VideoWithOwner, error)
	// CountForOwnerVideos counts likes received across all videos owned by
	// ownerID (dashboard aggregate).
	CountForOwnerVideos(ctx context.Context, ownerID string) (int64, error)
}
