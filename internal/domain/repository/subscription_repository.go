package repository

import (
	"context"

	"github.com/playtube/playtube-api/internal/domain/entity"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, s *entity.Subscription) error
	Delete(ctx context.Context, subscriberID, channelID string) error
	IsSubscribed(ctx context.Context, channelID, subscriberID string) (bool, error)
	CountByChannel(ctx context.Context, channelID string) (int64, error)
	CountBySubscriber(ctx context.Context, subscriberID string) (int64, error)
	ListSubscribers(ctx context.Context, channelID string) ([]entity.Owner, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]entity.Owner, error)
}
