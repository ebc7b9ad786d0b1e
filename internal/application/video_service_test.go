package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-api/internal/domain/entity"
	"github.com/playtube/playtube-api/pkg/apperrors"
)

func newVideoService(videos *mockVideoRepo, users *mockUserRepo, store *mockMediaStore, index *mockVideoIndexer) *VideoService {
	var idx VideoIndexer
	if index != nil {
		idx = index
	}
	return NewVideoService(videos, users, store, idx, nil)
}

func TestVideoGet_RecordsViewAndHistoryForViewer(t *testing.T) {
	videos := &mockVideoRepo{}
	users := &mockUserRepo{}
	svc := newVideoService(videos, users, &mockMediaStore{}, nil)

	v := &entity.VideoWithOwner{}
	v.ID = "v1"
	v.Views = 9
	videos.On("GetWithOwner", mock.Anything, "v1").Return(v, nil)
	videos.On("IncrementViews", mock.Anything, "v1").Return(nil)
	users.On("AppendWatchHistory", mock.Anything, "viewer", "v1").Return(nil)

	got, err := svc.Get(context.Background(), "v1", "viewer")
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Views)
	users.AssertExpectations(t)
}

func TestVideoGet_AnonymousViewerRecordsNothing(t *testing.T) {
	videos := &mockVideoRepo{}
	users := &mockUserRepo{}
	svc := newVideoService(videos, users, &mockMediaStore{}, nil)

	v := &entity.VideoWithOwner{}
	v.ID = "v1"
	videos.On("GetWithOwner", mock.Anything, "v1").Return(v, nil)

	_, err := svc.Get(context.Background(), "v1", "")
	require.NoError(t, err)
	videos.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "AppendWatchHistory", mock.Anything, mock.Anything, mock.Anything)
}

func TestVideoGet_HistoryWriteFailureDoesNotBreakRead(t *testing.T) {
	videos := &mockVideoRepo{}
	users := &mockUserRepo{}
	svc := newVideoService(videos, users, &mockMediaStore{}, nil)

	v := &entity.VideoWithOwner{}
	v.ID = "v1"
	videos.On("GetWithOwner", mock.Anything, "v1").Return(v, nil)
	videos.On("IncrementViews", mock.Anything, "v1").Return(errors.New("db timeout"))
	users.On("AppendWatchHistory", mock.Anything, "viewer", "v1").Return(errors.New("db timeout"))

	got, err := svc.Get(context.Background(), "v1", "viewer")
	require.NoError(t, err)
	assert.Equal(t, "v1", got.ID)
}

func TestVideoUpdate_NotOwnerIsAuth(t *testing.T) {
	videos := &mockVideoRepo{}
	svc := newVideoService(videos, &mockUserRepo{}, &mockMediaStore{}, nil)

	videos.On("GetByID", mock.Anything, "v1").
		Return(&entity.Video{ID: "v1", OwnerID: "someone-else"}, nil)

	_, err := svc.Update(context.Background(), "me", "v1", UpdateVideoInput{Title: "t", Description: "d"})
	assert.ErrorIs(t, err, apperrors.ErrAuth)
	videos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestVideoPublish_IndexesAfterCreate(t *testing.T) {
	videos := &mockVideoRepo{}
	store := &mockMediaStore{}
	index := &mockVideoIndexer{}
	svc := newVideoService(videos, &mockUserRepo{}, store, index)

	store.On("Upload", mock.Anything, "videos", mock.Anything, mock.Anything, mock.Anything).
		Return("https://storage.googleapis.com/playtube/videos/a.mp4", nil)
	store.On("Upload", mock.Anything, "thumbnails", mock.Anything, mock.Anything, mock.Anything).
		Return("https://storage.googleapis.com/playtube/thumbnails/a.png", nil)
	videos.On("Create", mock.Anything, mock.AnythingOfType("*entity.Video")).Return(nil)
	index.On("Index", mock.Anything, mock.AnythingOfType("*entity.Video")).Return(nil)

	v, err := svc.Publish(context.Background(), "me", PublishVideoInput{
		Title:       "Gophers",
		Description: "doc",
		Duration:    12.5,
		Video:       &Upload{Filename: "a.mp4", ContentType: "video/mp4"},
		Thumbnail:   &Upload{Filename: "a.png", ContentType: "image/png"},
	})
	require.NoError(t, err)
	assert.True(t, v.IsPublished)
	index.AssertExpectations(t)
}

func TestVideoSearch_ResolvesHitsInRelevanceOrder(t *testing.T) {
	videos := &mockVideoRepo{}
	index := &mockVideoIndexer{}
	svc := newVideoService(videos, &mockUserRepo{}, &mockMediaStore{}, index)

	hits := []string{"v2", "v1"}
	index.On("Search", mock.Anything, "gophers", 10, 0).Return(hits, nil)
	first := entity.VideoWithOwner{}
	first.ID = "v2"
	second := entity.VideoWithOwner{}
	second.ID = "v1"
	videos.On("ListByIDsOrdered", mock.Anything, hits).
		Return([]entity.VideoWithOwner{first, second}, nil)

	got, err := svc.Search(context.Background(), "gophers", 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "v2", got[0].ID)
}

func TestVideoSearch_NoHitsIsEmptySlice(t *testing.T) {
	videos := &mockVideoRepo{}
	index := &mockVideoIndexer{}
	svc := newVideoService(videos, &mockUserRepo{}, &mockMediaStore{}, index)

	index.On("Search", mock.Anything, "nothing", 10, 0).Return([]string{}, nil)

	got, err := svc.Search(context.Background(), "nothing", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	videos.AssertNotCalled(t, "ListByIDsOrdered", mock.Anything, mock.Anything)
}
