package application

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-api/internal/domain/entity"
	repo "github.com/playtube/playtube-api/internal/domain/repository"
	"github.com/playtube/playtube-api/pkg/apperrors"
)

func newChannelService(users *mockUserRepo, subs *mockSubscriptionRepo, videos *mockVideoRepo) *ChannelService {
	return NewChannelService(users, subs, videos)
}

func TestGetChannelProfile_SubscribedViewer(t *testing.T) {
	users := &mockUserRepo{}
	subs := &mockSubscriptionRepo{}
	svc := newChannelService(users, subs, &mockVideoRepo{})

	alice := &entity.User{
		ID: "alice-id", Username: "alice", Email: "alice@example.com",
		FullName: "Alice A", AvatarURL: "https://img/a.png",
		Password: "hash", RefreshToken: "secret-token",
	}
	users.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
	subs.On("CountByChannel", mock.Anything, "alice-id").Return(int64(42), nil)
	subs.On("CountBySubscriber", mock.Anything, "alice-id").Return(int64(7), nil)
	subs.On("IsSubscribed", mock.Anything, "alice-id", "viewer-id").Return(true, nil)

	p, err := svc.GetChannelProfile(context.Background(), "alice", "viewer-id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), p.SubscribersCount)
	assert.Equal(t, int64(7), p.SubscribedToCount)
	assert.True(t, p.IsSubscribed)

	// Public-safe fields only.
	body, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "secret-token")
	assert.NotContains(t, string(body), "hash")
}

func TestGetChannelProfile_AnonymousViewerSkipsSubscriptionLookup(t *testing.T) {
	users := &mockUserRepo{}
	subs := &mockSubscriptionRepo{}
	svc := newChannelService(users, subs, &mockVideoRepo{})

	users.On("GetByUsername", mock.Anything, "alice").
		Return(&entity.User{ID: "alice-id", Username: "alice"}, nil)
	subs.On("CountByChannel", mock.Anything, "alice-id").Return(int64(0), nil)
	subs.On("CountBySubscriber", mock.Anything, "alice-id").Return(int64(0), nil)

	p, err := svc.GetChannelProfile(context.Background(), "alice", "")
	require.NoError(t, err)
	assert.False(t, p.IsSubscribed)
	subs.AssertNotCalled(t, "IsSubscribed", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetChannelProfile_UnknownUsernameIsNotFound(t *testing.T) {
	users := &mockUserRepo{}
	svc := newChannelService(users, &mockSubscriptionRepo{}, &mockVideoRepo{})

	users.On("GetByUsername", mock.Anything, "nobody").Return(nil, repo.ErrNotFound)

	_, err := svc.GetChannelProfile(context.Background(), "nobody", "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetChannelProfile_BlankUsernameIsValidation(t *testing.T) {
	svc := newChannelService(&mockUserRepo{}, &mockSubscriptionRepo{}, &mockVideoRepo{})

	_, err := svc.GetChannelProfile(context.Background(), "   ", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetWatchHistory_EmptySequenceIsEmptyNotError(t *testing.T) {
	users := &mockUserRepo{}
	videos := &mockVideoRepo{}
	svc := newChannelService(users, &mockSubscriptionRepo{}, videos)

	users.On("GetByID", mock.Anything, "u1").
		Return(&entity.User{ID: "u1", WatchHistory: nil}, nil)

	history, err := svc.GetWatchHistory(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NotNil(t, history)
	videos.AssertNotCalled(t, "ListByIDsOrdered", mock.Anything, mock.Anything)
}

func TestGetWatchHistory_UnknownIdentityIsEmpty(t *testing.T) {
	users := &mockUserRepo{}
	svc := newChannelService(users, &mockSubscriptionRepo{}, &mockVideoRepo{})

	users.On("GetByID", mock.Anything, "ghost").Return(nil, repo.ErrNotFound)

	history, err := svc.GetWatchHistory(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGetWatchHistory_PreservesStoredOrderAndSkipsDeleted(t *testing.T) {
	users := &mockUserRepo{}
	videos := &mockVideoRepo{}
	svc := newChannelService(users, &mockSubscriptionRepo{}, videos)

	ids := []string{"v3", "v1", "v2-deleted", "v4"}
	users.On("GetByID", mock.Anything, "u1").
		Return(&entity.User{ID: "u1", WatchHistory: ids}, nil)

	enriched := func(id string) entity.VideoWithOwner {
		v := entity.VideoWithOwner{}
		v.ID = id
		v.Owner = entity.Owner{ID: "owner-of-" + id, Username: "owner"}
		return v
	}
	// The repository join already dropped the deleted id, order intact.
	videos.On("ListByIDsOrdered", mock.Anything, ids).
		Return([]entity.VideoWithOwner{enriched("v3"), enriched("v1"), enriched("v4")}, nil)

	history, err := svc.GetWatchHistory(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "v3", history[0].ID)
	assert.Equal(t, "v1", history[1].ID)
	assert.Equal(t, "v4", history[2].ID)
	assert.Equal(t, "owner-of-v3", history[0].Owner.ID)
}
