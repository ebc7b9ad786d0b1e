package postgres

import (
	"context"
	"fmt"

	"github.com/playtube/playtube-api/internal/domain/entity"
	"github.com/playtube/playtube-api/internal/domain/repository"
)

type SubscriptionRepository struct {
	db DB
}

func NewSubscriptionRepository(db DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *entity.Subscription) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO subscriptions (subscriber_id, channel_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, s.SubscriberID, s.ChannelID)

	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, subscriberID, channelID string) error {
	ct, err := r.db.Exec(ctx, `
		DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2
	`, subscriberID, channelID)
	if err != nil {
		return mapError(err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("subscription: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *SubscriptionRepository) IsSubscribed(ctx context.Context, channelID, subscriberID string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM subscriptions WHERE channel_id = $1 AND subscriber_id = $2)
	`, channelID, subscriberID).Scan(&ok)
	if err != nil {
		return false, mapError(err)
	}
	return ok, nil
}

func (r *SubscriptionRepository) CountByChannel(ctx context.Context, channelID string) (int64, error) {
	return r.count(ctx, `SELECT count(*) FROM subscriptions WHERE channel_id = $1`, channelID)
}

func (r *SubscriptionRepository) CountBySubscriber(ctx context.Context, subscriberID string) (int64, error) {
	return r.count(ctx, `SELECT count(*) FROM subscriptions WHERE subscriber_id = $1`, subscriberID)
}

func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channelID string) ([]entity.Owner, error) {
	return r.listOwners(ctx, `
		SELECT u.id, u.username, u.avatar_url, u.full_name
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC
	`, channelID)
}

func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]entity.Owner, error) {
	return r.listOwners(ctx, `
		SELECT u.id, u.username, u.avatar_url, u.full_name
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC
	`, subscriberID)
}

func (r *SubscriptionRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, mapError(err)
	}
	return n, nil
}

func (r *SubscriptionRepository) listOwners(ctx context.Context, query string, args ...any) ([]entity.Owner, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.Owner, 0)
	for rows.Next() {
		var o entity.Owner
		if err := rows.Scan(&o.ID, &o.Username, &o.AvatarURL, &o.FullName); err != nil {
			return nil, fmt.Errorf("scan owner row: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
