package application

import (
	"context"
	"errors"
	"strings"

	"github.com/playtube/playtube-api/internal/domain/entity"
	repo "github.com/playtube/playtube-api/internal/domain/repository"
	"github.com/playtube/playtube-api/pkg/apperrors"
)

// ChannelService serves the two derived read models: the public channel
// profile and the ordered watch history. Both are computed per request and
// never persisted.
type ChannelService struct {
	Users  repo.UserRepository
	Subs   repo.SubscriptionRepository
	Videos repo.VideoRepository
}

func NewChannelService(users repo.UserRepository, subs repo.SubscriptionRepository, videos repo.VideoRepository) *ChannelService {
	return &ChannelService{Users: users, Subs: subs, Videos: videos}
}

// GetChannelProfile joins the identity against subscriptions from both sides:
// once as the channel (subscriber count) and once as the subscriber
// (subscribed-to count). viewerID may be empty for anonymous viewers.
func (s *ChannelService) GetChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.Validation("username is required")
	}

	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperrors.NotFound("channel not found")
		}
		return nil, storeErr(err, "channel")
	}

	subscribers, err := s.Subs.CountByChannel(ctx, u.ID)
	if err != nil {
		return nil, storeErr(err, "subscriptions")
	}
	subscribedTo, err := s.Subs.CountBySubscriber(ctx, u.ID)
	if err != nil {
		return nil, storeErr(err, "subscriptions")
	}

	isSubscribed := false
	if viewerID != "" {
		isSubscribed, err = s.Subs.IsSubscribed(ctx, u.ID, viewerID)
		if err != nil {
			return nil, storeErr(err, "subscriptions")
		}
	}

	return &entity.ChannelProfile{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		FullName:          u.FullName,
		AvatarURL:         u.AvatarURL,
		CoverImageURL:     u.CoverImageURL,
		SubscribersCount:  subscribers,
		SubscribedToCount: subscribedTo,
		IsSubscribed:      isSubscribed,
	}, nil
}

// GetWatchHistory resolves the identity's watch-history sequence to enriched
// videos, in exactly the stored order. An unknown identity or an empty
// sequence yields an empty slice; videos deleted since being watched are
// skipped by the join.
func (s *ChannelService) GetWatchHistory(ctx context.Context, userID string) ([]entity.VideoWithOwner, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return []entity.VideoWithOwner{}, nil
		}
		return nil, storeErr(err, "user")
	}
	if len(u.WatchHistory) == 0 {
		return []entity.VideoWithOwner{}, nil
	}

	videos, err := s.Videos.ListByIDsOrdered(ctx, u.WatchHistory)
	if err != nil {
		return nil, storeErr(err, "watch history")
	}
	return videos, nil
}
