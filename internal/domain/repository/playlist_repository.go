package repository

import (
	"context"

	"github.com/playtube/playtube-api/internal/domain/entity"
)

type PlaylistRepository interface {
	Create(ctx context.Context, p *entity.Playlist) error
	GetByID(ctx context.Context, id string) (*entity.Playlist, error)
	Update(ctx context.Context, id, name, description string) (*entity.Playlist, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, videoID string) error
}
