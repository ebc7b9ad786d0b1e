package application

import (
	"context"
	"strings"

	"github.com/playtube/playtube-api/internal/domain/entity"
	repo "github.com/playtube/playtube-api/internal/domain/repository"
	"github.com/playtube/playtube-api/pkg/apperrors"
)

type CommentService struct {
	Comments repo.CommentRepository
	Videos   repo.VideoRepository
}

func NewCommentService(comments repo.CommentRepository, videos repo.VideoRepository) *CommentService {
	return &CommentService{Comments: comments, Videos: videos}
}

func (s *CommentService) Add(ctx context.Context, ownerID, videoID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.Validation("content is required")
	}
	if _, err := s.Videos.GetByID(ctx, videoID); err != nil {
		return nil, storeErr(err, "video")
	}

	c := &entity.Comment{VideoID: videoID, OwnerID: ownerID, Content: content}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, storeErr(err, "comment")
	}
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, ownerID, commentID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.Validation("content is required")
	}
	if err := s.checkOwner(ctx, ownerID, commentID); err != nil {
		return nil, err
	}

	c, err := s.Comments.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, storeErr(err, "comment")
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, ownerID, commentID string) error {
	if err := s.checkOwner(ctx, ownerID, commentID); err != nil {
		return err
	}
	return storeErr(s.Comments.Delete(ctx, commentID), "comment")
}

func (s *CommentService) ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]entity.CommentWithOwner, error) {
	comments, err := s.Comments.ListByVideo(ctx, videoID, limit, offset)
	if err != nil {
		return nil, storeErr(err, "comments")
	}
	return comments, nil
}

func (s *CommentService) checkOwner(ctx context.Context, ownerID, commentID string) error {
	c, err := s.Comments.GetByID(ctx, commentID)
	if err != nil {
		return storeErr(err, "comment")
	}
	if c.OwnerID != ownerID {
		return apperrors.Auth("not the owner of this comment")
	}
	return nil
}
