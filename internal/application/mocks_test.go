package application

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/playtube/playtube-api/internal/domain/entity"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	args := m.Called(ctx, email, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) UpdateAccount(ctx context.Context, id, fullName, email string) (*entity.User, error) {
	args := m.Called(ctx, id, fullName, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) UpdateAvatar(ctx context.Context, id, avatarURL string) (*entity.User, error) {
	args := m.Called(ctx, id, avatarURL)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) UpdateCoverImage(ctx context.Context, id, coverImageURL string) (*entity.User, error) {
	args := m.Called(ctx, id, coverImageURL)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *mockUserRepo) SetRefreshToken(ctx context.Context, id, token string) error {
	return m.Called(ctx, id, token).Error(0)
}

func (m *mockUserRepo) ConditionalUpdateRefreshToken(ctx context.Context, id, expectedOld, newToken string) (bool, error) {
	args := m.Called(ctx, id, expectedOld, newToken)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ClearRefreshToken(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) AppendWatchHistory(ctx context.Context, id, videoID string) error {
	return m.Called(ctx, id, videoID).Error(0)
}

type mockVideoRepo struct{ mock.Mock }

func (m *mockVideoRepo) Create(ctx context.Context, v *entity.Video) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVideoRepo) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*entity.Video)
	return v, args.Error(1)
}

func (m *mockVideoRepo) GetWithOwner(ctx context.Context, id string) (*entity.VideoWithOwner, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*entity.VideoWithOwner)
	return v, args.Error(1)
}

func (m *mockVideoRepo) ListByIDsOrdered(ctx context.Context, ids []string) ([]entity.VideoWithOwner, error) {
	args := m.Called(ctx, ids)
	vs, _ := args.Get(0).([]entity.VideoWithOwner)
	return vs, args.Error(1)
}

func (m *mockVideoRepo) ListByOwner(ctx context.Context, ownerID string, includeUnpublished bool, limit, offset int) ([]entity.Video, error) {
	args := m.Called(ctx, ownerID, includeUnpublished, limit, offset)
	vs, _ := args.Get(0).([]entity.Video)
	return vs, args.Error(1)
}

func (m *mockVideoRepo) Update(ctx context.Context, v *entity.Video) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVideoRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockVideoRepo) SetPublished(ctx context.Context, id string, published bool) error {
	return m.Called(ctx, id, published).Error(0)
}

func (m *mockVideoRepo) IncrementViews(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockVideoRepo) OwnerTotals(ctx context.Context, ownerID string) (int64, int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type mockSubscriptionRepo struct{ mock.Mock }

func (m *mockSubscriptionRepo) Create(ctx context.Context, s *entity.Subscription) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSubscriptionRepo) Delete(ctx context.Context, subscriberID, channelID string) error {
	return m.Called(ctx, subscriberID, channelID).Error(0)
}

func (m *mockSubscriptionRepo) IsSubscribed(ctx context.Context, channelID, subscriberID string) (bool, error) {
	args := m.Called(ctx, channelID, subscriberID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubscriptionRepo) CountByChannel(ctx context.Context, channelID string) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubscriptionRepo) CountBySubscriber(ctx context.Context, subscriberID string) (int64, error) {
	args := m.Called(ctx, subscriberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubscriptionRepo) ListSubscribers(ctx context.Context, channelID string) ([]entity.Owner, error) {
	args := m.Called(ctx, channelID)
	os, _ := args.Get(0).([]entity.Owner)
	return os, args.Error(1)
}

func (m *mockSubscriptionRepo) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]entity.Owner, error) {
	args := m.Called(ctx, subscriberID)
	os, _ := args.Get(0).([]entity.Owner)
	return os, args.Error(1)
}

type mockMediaStore struct{ mock.Mock }

func (m *mockMediaStore) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, folder, filename, contentType, r)
	return args.String(0), args.Error(1)
}

func (m *mockMediaStore) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

type mockEmailQueue struct{ mock.Mock }

func (m *mockEmailQueue) PublishJSON(ctx context.Context, body any) error {
	return m.Called(ctx, body).Error(0)
}

type mockVideoIndexer struct{ mock.Mock }

func (m *mockVideoIndexer) Index(ctx context.Context, v *entity.Video) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVideoIndexer) Delete(ctx context.Context, videoID string) error {
	return m.Called(ctx, videoID).Error(0)
}

func (m *mockVideoIndexer) Search(ctx context.Context, query string, limit, offset int) ([]string, error) {
	args := m.Called(ctx, query, limit, offset)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}
