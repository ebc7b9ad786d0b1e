package application

import (
	"context"
	"strings"

	"github.com/playtube/playtube-api/internal/domain/entity"
	repo "github.com/playtube/playtube-api/internal/domain/repository"
	"github.com/playtube/playtube-api/pkg/apperrors"
)

type TweetService struct {
	Tweets repo.TweetRepository
}

func NewTweetService(tweets repo.TweetRepository) *TweetService {
	return &TweetService{Tweets: tweets}
}

func (s *TweetService) Create(ctx context.Context, ownerID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.Validation("content is required")
	}

	t := &entity.Tweet{OwnerID: ownerID, Content: content}
	if err := s.Tweets.Create(ctx, t); err != nil {
		return nil, storeErr(err, "tweet")
	}
	return t, nil
}

func (s *TweetService) Update(ctx context.Context, ownerID, tweetID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.Validation("content is required")
	}
	if err := s.checkOwner(ctx, ownerID, tweetID); err != nil {
		return nil, err
	}

	t, err := s.Tweets.UpdateContent(ctx, tweetID, content)
	if err != nil {
		return nil, storeErr(err, "tweet")
	}
	return t, nil
}

func (s *TweetService) Delete(ctx context.Context, ownerID, tweetID string) error {
	if err := s.checkOwner(ctx, ownerID, tweetID); err != nil {
		return err
	}
	return storeErr(s.Tweets.Delete(ctx, tweetID), "tweet")
}

func (s *TweetService) ListByUser(ctx context.Context, userID string) ([]entity.Tweet, error) {
	tweets, err := s.Tweets.ListByOwner(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "tweets")
	}
	return tweets, nil
}

func (s *TweetService) checkOwner(ctx context.Context, ownerID, tweetID string) error {
	t, err := s.Tweets.GetByID(ctx, tweetID)
	if err != nil {
		return storeErr(err, "tweet")
	}
	if t.OwnerID != ownerID {
		return apperrors.Auth("not the owner of this tweet")
	}
	return nil
}
