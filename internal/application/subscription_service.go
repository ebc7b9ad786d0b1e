package application

import (
	"context"
	"errors"

	"github.com/playtube/playtube-api/internal/domain/entity"
	repo "github.com/playtube/playtube-api/internal/domain/repository"
	"github.com/playtube/playtube-api/pkg/apperrors"
)

type SubscriptionService struct {
	Subs  repo.SubscriptionRepository
	Users repo.UserRepository
}

func NewSubscriptionService(subs repo.SubscriptionRepository, users repo.UserRepository) *SubscriptionService {
	return &SubscriptionService{Subs: subs, Users: users}
}

// Toggle flips the subscriber's subscription to the channel and reports the
// resulting state.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	if subscriberID == channelID {
		return false, apperrors.Validation("cannot subscribe to your own channel")
	}
	if _, err := s.Users.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, apperrors.NotFound("channel not found")
		}
		return false, storeErr(err, "channel")
	}

	subscribed, err := s.Subs.IsSubscribed(ctx, channelID, subscriberID)
	if err != nil {
		return false, storeErr(err, "subscription")
	}
	if subscribed {
		if err := s.Subs.Delete(ctx, subscriberID, channelID); err != nil && !errors.Is(err, repo.ErrNotFound) {
			return false, storeErr(err, "subscription")
		}
		return false, nil
	}

	sub := &entity.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	if err := s.Subs.Create(ctx, sub); err != nil {
		// A concurrent toggle may have created it already.
		if errors.Is(err, repo.ErrDuplicate) {
			return true, nil
		}
		return false, storeErr(err, "subscription")
	}
	return true, nil
}

func (s *SubscriptionService) ListSubscribers(ctx context.Context, channelID string) ([]entity.Owner, error) {
	subs, err := s.Subs.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, storeErr(err, "subscribers")
	}
	return subs, nil
}

func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]entity.Owner, error) {
	channels, err := s.Subs.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, storeErr(err, "subscriptions")
	}
	return channels, nil
}
