package application

import (
	"context"

	"github.com/playtube/playtube-api/internal/domain/entity"
	repo "github.com/playtube/playtube-api/internal/domain/repository"
)

// DashboardService aggregates the channel-owner view: totals across the
// owner's videos plus subscriber and like counts.
type DashboardService struct {
	Videos repo.VideoRepository
	Subs   repo.SubscriptionRepository
	Likes  repo.LikeRepository
}

func NewDashboardService(videos repo.VideoRepository, subs repo.SubscriptionRepository, likes repo.LikeRepository) *DashboardService {
	return &DashboardService{Videos: videos, Subs: subs, Likes: likes}
}

func (s *DashboardService) Stats(ctx context.Context, ownerID string) (*entity.ChannelStats, error) {
	totalVideos, totalViews, err := s.Videos.OwnerTotals(ctx, ownerID)
	if err != nil {
		return nil, storeErr(err, "videos")
	}
	subscribers, err := s.Subs.CountByChannel(ctx, ownerID)
	if err != nil {
		return nil, storeErr(err, "subscriptions")
	}
	likes, err := s.Likes.CountForOwnerVideos(ctx, ownerID)
	if err != nil {
		return nil, storeErr(err, "likes")
	}

	return &entity.ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: subscribers,
		TotalLikes:       likes,
	}, nil
}

// Videos lists the owner's channel videos, unpublished included.
func (s *DashboardService) ChannelVideos(ctx context.Context, ownerID string, limit, offset int) ([]entity.Video, error) {
	videos, err := s.Videos.ListByOwner(ctx, ownerID, true, limit, offset)
	if err != nil {
		return nil, storeErr(err, "videos")
	}
	return videos, nil
}
