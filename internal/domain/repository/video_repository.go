package repository

import (
	"context"

	"github.com/playtube/playtube-api/internal/domain/entity"
)

type VideoRepository interface {
	Create(ctx context.Context, v *entity.Video) error
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	GetWithOwner(ctx context.Context, id string) (*entity.VideoWithOwner, error)
	// ListByIDsOrdered returns videos in exactly the order of ids, enriched
	// with their owners; ids without a matching video are skipped.
	ListByIDsOrdered(ctx context.Context, ids []string) ([]entity.VideoWithOwner, error)
	ListByOwner(ctx context.Context, ownerID string, includeUnpublished bool, limit, offset int) ([]entity.Video, error)
	Update(ctx context.Context, v *entity.Video) error
	Delete(ctx context.Context, id string) error
	SetPublished(ctx context.Context, id string, published bool) error
	IncrementViews(ctx context.Context, id string) error
	// OwnerTotals returns the video count and summed views across an owner's
	// videos (dashboard aggregate).
	OwnerTotals(ctx context.Context, ownerID string) (videos int64, views int64, err error)
}
