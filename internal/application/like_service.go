package application

import (
	"context"
	"errors"

	"github.com/playtube/playtube-api/internal/domain/entity"
	repo "github.com/playtube/playtube-api/internal/domain/repository"
	"github.com/playtube/playtube-api/pkg/apperrors"
)

type LikeService struct {
	Likes    repo.LikeRepository
	Videos   repo.VideoRepository
	Comments repo.CommentRepository
	Tweets   repo.TweetRepository
}

func NewLikeService(likes repo.LikeRepository, videos repo.VideoRepository, comments repo.CommentRepository, tweets repo.TweetRepository) *LikeService {
	return &LikeService{Likes: likes, Videos: videos, Comments: comments, Tweets: tweets}
}

// Toggle flips the (owner, target) like and reports the resulting state plus
// the target's new like count.
func (s *LikeService) Toggle(ctx context.Context, ownerID string, target entity.LikeTarget, targetID string) (bool, int64, error) {
	if err := s.targetExists(ctx, target, targetID); err != nil {
		return false, 0, err
	}

	liked, err := s.Likes.Exists(ctx, ownerID, target, targetID)
	if err != nil {
		return false, 0, storeErr(err, "like")
	}
	if liked {
		if err := s.Likes.Delete(ctx, ownerID, target, targetID); err != nil && !errors.Is(err, repo.ErrNotFound) {
			return false, 0, storeErr(err, "like")
		}
		liked = false
	} else {
		l := &entity.Like{OwnerID: ownerID, Target: target, TargetID: targetID}
		if err := s.Likes.Create(ctx, l); err != nil && !errors.Is(err, repo.ErrDuplicate) {
			return false, 0, storeErr(err, "like")
		}
		liked = true
	}

	count, err := s.Likes.CountByTarget(ctx, target, targetID)
	if err != nil {
		return liked, 0, storeErr(err, "like")
	}
	return liked, count, nil
}

func (s *LikeService) ListLikedVideos(ctx context.Context, ownerID string) ([]entity.VideoWithOwner, error) {
	videos, err := s.Likes.ListLikedVideos(ctx, ownerID)
	if err != nil {
		return nil, storeErr(err, "liked videos")
	}
	return videos, nil
}

func (s *LikeService) targetExists(ctx context.Context, target entity.LikeTarget, targetID string) error {
	var err error
	switch target {
	case entity.LikeTargetVideo:
		_, err = s.Videos.GetByID(ctx, targetID)
		return storeErr(err, "video")
	case entity.LikeTargetComment:
		_, err = s.Comments.GetByID(ctx, targetID)
		return storeErr(err, "comment")
	case entity.LikeTargetTweet:
		_, err = s.Tweets.GetByID(ctx, targetID)
		return storeErr(err, "tweet")
	default:
		return apperrors.Validation("unknown like target")
	}
}
