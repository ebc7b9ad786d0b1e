package application

import (
	"context"
	"errors"
	"strings"

	"github.com/playtube/playtube-api/internal/domain/entity"
	repo "github.com/playtube/playtube-api/internal/domain/repository"
	"github.com/playtube/playtube-api/pkg/apperrors"
)

type PlaylistService struct {
	Playlists repo.PlaylistRepository
	Videos    repo.VideoRepository
}

func NewPlaylistService(playlists repo.PlaylistRepository, videos repo.VideoRepository) *PlaylistService {
	return &PlaylistService{Playlists: playlists, Videos: videos}
}

func (s *PlaylistService) Create(ctx context.Context, ownerID, name, description string) (*entity.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("name is required")
	}

	p := &entity.Playlist{OwnerID: ownerID, Name: name, Description: strings.TrimSpace(description)}
	if err := s.Playlists.Create(ctx, p); err != nil {
		return nil, storeErr(err, "playlist")
	}
	return p, nil
}

func (s *PlaylistService) Get(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	p, err := s.Playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, storeErr(err, "playlist")
	}
	return p, nil
}

func (s *PlaylistService) Update(ctx context.Context, ownerID, playlistID, name, description string) (*entity.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("name is required")
	}
	if err := s.checkOwner(ctx, ownerID, playlistID); err != nil {
		return nil, err
	}

	p, err := s.Playlists.Update(ctx, playlistID, name, strings.TrimSpace(description))
	if err != nil {
		return nil, storeErr(err, "playlist")
	}
	return p, nil
}

func (s *PlaylistService) Delete(ctx context.Context, ownerID, playlistID string) error {
	if err := s.checkOwner(ctx, ownerID, playlistID); err != nil {
		return err
	}
	return storeErr(s.Playlists.Delete(ctx, playlistID), "playlist")
}

func (s *PlaylistService) ListByUser(ctx context.Context, userID string) ([]entity.Playlist, error) {
	playlists, err := s.Playlists.ListByOwner(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "playlists")
	}
	return playlists, nil
}

func (s *PlaylistService) AddVideo(ctx context.Context, ownerID, playlistID, videoID string) (*entity.Playlist, error) {
	if err := s.checkOwner(ctx, ownerID, playlistID); err != nil {
		return nil, err
	}
	if _, err := s.Videos.GetByID(ctx, videoID); err != nil {
		return nil, storeErr(err, "video")
	}
	if err := s.Playlists.AddVideo(ctx, playlistID, videoID); err != nil && !errors.Is(err, repo.ErrDuplicate) {
		return nil, storeErr(err, "playlist")
	}
	return s.Get(ctx, playlistID)
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, ownerID, playlistID, videoID string) (*entity.Playlist, error) {
	if err := s.checkOwner(ctx, ownerID, playlistID); err != nil {
		return nil, err
	}
	if err := s.Playlists.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, storeErr(err, "playlist video")
	}
	return s.Get(ctx, playlistID)
}

func (s *PlaylistService) checkOwner(ctx context.Context, ownerID, playlistID string) error {
	p, err := s.Playlists.GetByID(ctx, playlistID)
	if err != nil {
		return storeErr(err, "playlist")
	}
	if p.OwnerID != ownerID {
		return apperrors.Auth("not the owner of this playlist")
	}
	return nil
}
