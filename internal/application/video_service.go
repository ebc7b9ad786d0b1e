package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/playtube/playtube-api/internal/domain/entity"
	repo "github.com/playtube/playtube-api/internal/domain/repository"
	"github.com/playtube/playtube-api/internal/infrastructure/media"
	"github.com/playtube/playtube-api/pkg/apperrors"
)

// VideoService owns the video lifecycle. The database is the source of truth;
// the search index is a mirror, so index write failures are logged rather
// than surfaced.
type VideoService struct {
	Videos repo.VideoRepository
	Users  repo.UserRepository
	Media  media.Store
	Index  VideoIndexer
	Logger *logrus.Logger
}

func NewVideoService(videos repo.VideoRepository, users repo.UserRepository, store media.Store, index VideoIndexer, logger *logrus.Logger) *VideoService {
	return &VideoService{Videos: videos, Users: users, Media: store, Index: index, Logger: logger}
}

type PublishVideoInput struct {
	Title       string
	Description string
	Duration    float64
	Video       *Upload
	Thumbnail   *Upload
}

func (s *VideoService) Publish(ctx context.Context, ownerID string, in PublishVideoInput) (*entity.Video, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" || in.Description == "" {
		return nil, apperrors.Validation("title and description are required")
	}
	if in.Video == nil || in.Thumbnail == nil {
		return nil, apperrors.Validation("video file and thumbnail are required")
	}

	videoURL, err := s.Media.Upload(ctx, "videos", in.Video.Filename, in.Video.ContentType, in.Video.Reader)
	if err != nil {
		return nil, apperrors.Dependency("video upload failed", err)
	}
	thumbURL, err := s.Media.Upload(ctx, "thumbnails", in.Thumbnail.Filename, in.Thumbnail.ContentType, in.Thumbnail.Reader)
	if err != nil {
		return nil, apperrors.Dependency("thumbnail upload failed", err)
	}

	v := &entity.Video{
		OwnerID:      ownerID,
		Title:        in.Title,
		Description:  in.Description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbURL,
		Duration:     in.Duration,
		IsPublished:  true,
	}
	if err := s.Videos.Create(ctx, v); err != nil {
		return nil, storeErr(err, "video")
	}
	s.reindex(ctx, v)
	return v, nil
}

// Get returns the enriched video and, when a viewer is authenticated, records
// a view and a watch-history entry. The recording is best effort; a failed
// write never breaks the read.
func (s *VideoService) Get(ctx context.Context, videoID, viewerID string) (*entity.VideoWithOwner, error) {
	v, err := s.Videos.GetWithOwner(ctx, videoID)
	if err != nil {
		return nil, storeErr(err, "video")
	}

	if viewerID != "" {
		if err := s.Videos.IncrementViews(ctx, videoID); err != nil {
			s.logWarn(err, videoID, "increment views failed")
		} else {
			v.Views++
		}
		if err := s.Users.AppendWatchHistory(ctx, viewerID, videoID); err != nil {
			s.logWarn(err, videoID, "append watch history failed")
		}
	}
	return v, nil
}

// ListByChannel lists a channel's videos. The owner sees unpublished videos
// too; everyone else only the published ones.
func (s *VideoService) ListByChannel(ctx context.Context, username, viewerID string, limit, offset int) ([]entity.Video, error) {
	owner, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperrors.NotFound("channel not found")
		}
		return nil, storeErr(err, "channel")
	}
	videos, err := s.Videos.ListByOwner(ctx, owner.ID, viewerID == owner.ID, limit, offset)
	if err != nil {
		return nil, storeErr(err, "videos")
	}
	return videos, nil
}

type UpdateVideoInput struct {
	Title       string
	Description string
	Thumbnail   *Upload
}

func (s *VideoService) Update(ctx context.Context, ownerID, videoID string, in UpdateVideoInput) (*entity.Video, error) {
	v, err := s.owned(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" || in.Description == "" {
		return nil, apperrors.Validation("title and description are required")
	}
	v.Title = in.Title
	v.Description = in.Description

	oldThumb := ""
	if in.Thumbnail != nil {
		url, err := s.Media.Upload(ctx, "thumbnails", in.Thumbnail.Filename, in.Thumbnail.ContentType, in.Thumbnail.Reader)
		if err != nil {
			return nil, apperrors.Dependency("thumbnail upload failed", err)
		}
		oldThumb = v.ThumbnailURL
		v.ThumbnailURL = url
	}

	if err := s.Videos.Update(ctx, v); err != nil {
		return nil, storeErr(err, "video")
	}
	if oldThumb != "" {
		if err := s.Media.Delete(ctx, oldThumb); err != nil {
			s.logWarn(err, videoID, "delete of replaced thumbnail failed")
		}
	}
	s.reindex(ctx, v)
	return v, nil
}

func (s *VideoService) Delete(ctx context.Context, ownerID, videoID string) error {
	v, err := s.owned(ctx, ownerID, videoID)
	if err != nil {
		return err
	}
	if err := s.Videos.Delete(ctx, videoID); err != nil {
		return storeErr(err, "video")
	}

	for _, url := range []string{v.VideoURL, v.ThumbnailURL} {
		if err := s.Media.Delete(ctx, url); err != nil {
			s.logWarn(err, videoID, "delete of media object failed")
		}
	}
	if s.Index != nil {
		if err := s.Index.Delete(ctx, videoID); err != nil {
			s.logWarn(err, videoID, "remove video from search index failed")
		}
	}
	return nil
}

func (s *VideoService) TogglePublish(ctx context.Context, ownerID, videoID string) (*entity.Video, error) {
	v, err := s.owned(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}
	v.IsPublished = !v.IsPublished
	if err := s.Videos.SetPublished(ctx, videoID, v.IsPublished); err != nil {
		return nil, storeErr(err, "video")
	}
	s.reindex(ctx, v)
	return v, nil
}

// Search runs the query against the index and resolves hits through the
// repository, preserving relevance order.
func (s *VideoService) Search(ctx context.Context, query string, limit, offset int) ([]entity.VideoWithOwner, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.Validation("query is required")
	}
	if s.Index == nil {
		return nil, apperrors.Dependency("search is unavailable", nil)
	}
	ids, err := s.Index.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Dependency("search failed", err)
	}
	if len(ids) == 0 {
		return []entity.VideoWithOwner{}, nil
	}
	videos, err := s.Videos.ListByIDsOrdered(ctx, ids)
	if err != nil {
		return nil, storeErr(err, "videos")
	}
	return videos, nil
}

// owned loads the video and enforces ownership: a missing record is NotFound,
// a record owned by someone else is an authorization failure.
func (s *VideoService) owned(ctx context.Context, ownerID, videoID string) (*entity.Video, error) {
	v, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, storeErr(err, "video")
	}
	if v.OwnerID != ownerID {
		return nil, apperrors.Auth("not the owner of this video")
	}
	return v, nil
}

func (s *VideoService) reindex(ctx context.Context, v *entity.Video) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, v); err != nil {
		s.logWarn(err, v.ID, "index video failed")
	}
}

func (s *VideoService) logWarn(err error, videoID, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("video_id", videoID).Warn(msg)
	}
}
