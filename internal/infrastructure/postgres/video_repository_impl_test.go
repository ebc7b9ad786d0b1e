package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-api/internal/domain/entity"
	"github.com/playtube/playtube-api/internal/domain/repository"
)

func setupVideoRepo(t *testing.T) (*VideoRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewVideoRepository(mock), mock
}

func sampleVideo() *entity.Video {
	now := time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)
	return &entity.Video{
		ID:           "aaaa1111-bbbb-2222-cccc-333344445555",
		OwnerID:      "5f4d3c2b-1a09-4e87-b654-3210fedcba98",
		Title:        "Gophers in the wild",
		Description:  "A short documentary",
		VideoURL:     "https://storage.googleapis.com/playtube/videos/gophers.mp4",
		ThumbnailURL: "https://storage.googleapis.com/playtube/thumbnails/gophers.png",
		Duration:     421.5,
		Views:        12,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func videoRowColumns() []string {
	return []string{
		"id", "owner_id", "title", "description", "video_url",
		"thumbnail_url", "duration", "views", "is_published", "created_at", "updated_at",
	}
}

func videoWithOwnerColumns() []string {
	return append(videoRowColumns(), "o_id", "o_username", "o_avatar_url", "o_full_name")
}

func videoWithOwnerRows(videos ...*entity.Video) *pgxmock.Rows {
	rows := pgxmock.NewRows(videoWithOwnerColumns())
	for _, v := range videos {
		rows.AddRow(
			v.ID, v.OwnerID, v.Title, v.Description, v.VideoURL,
			v.ThumbnailURL, v.Duration, v.Views, v.IsPublished, v.CreatedAt, v.UpdatedAt,
			v.OwnerID, "caseyquinn", "https://storage.googleapis.com/playtube/avatars/casey.png", "Casey Quinn",
		)
	}
	return rows
}

func TestVideoRepository_Create_Success(t *testing.T) {
	repo, mock := setupVideoRepo(t)
	defer mock.Close()

	v := sampleVideo()
	mock.ExpectQuery("INSERT INTO videos").
		WithArgs(v.OwnerID, v.Title, v.Description, v.VideoURL, v.ThumbnailURL, v.Duration, v.IsPublished).
		WillReturnRows(pgxmock.NewRows([]string{"id", "views", "created_at", "updated_at"}).
			AddRow(v.ID, int64(0), v.CreatedAt, v.UpdatedAt))

	in := &entity.Video{
		OwnerID:      v.OwnerID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Duration:     v.Duration,
		IsPublished:  v.IsPublished,
	}
	err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, v.ID, in.ID)
	assert.Zero(t, in.Views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := setupVideoRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM videos").
		WithArgs("missing-id").
		WillReturnRows(pgxmock.NewRows(videoRowColumns()))

	got, err := repo.GetByID(context.Background(), "missing-id")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_ListByIDsOrdered_PreservesOrderAndSkipsMissing(t *testing.T) {
	repo, mock := setupVideoRepo(t)
	defer mock.Close()

	first := sampleVideo()
	second := sampleVideo()
	second.ID = "bbbb2222-cccc-3333-dddd-444455556666"
	second.Title = "Second watch"

	// Three requested ids, the middle one deleted since it was watched.
	ids := []string{first.ID, "dead0000-0000-0000-0000-000000000000", second.ID}

	mock.ExpectQuery("FROM unnest").
		WithArgs(ids).
		WillReturnRows(videoWithOwnerRows(first, second))

	got, err := repo.ListByIDsOrdered(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, "caseyquinn", got[0].Owner.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_Update_NotFound(t *testing.T) {
	repo, mock := setupVideoRepo(t)
	defer mock.Close()

	v := sampleVideo()
	mock.ExpectExec("UPDATE videos").
		WithArgs(v.ID, v.Title, v.Description, v.ThumbnailURL).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), v)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_SetPublished(t *testing.T) {
	repo, mock := setupVideoRepo(t)
	defer mock.Close()

	v := sampleVideo()
	mock.ExpectExec("UPDATE videos SET is_published").
		WithArgs(v.ID, false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetPublished(context.Background(), v.ID, false)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_OwnerTotals(t *testing.T) {
	repo, mock := setupVideoRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT count").
		WithArgs("owner-1").
		WillReturnRows(pgxmock.NewRows([]string{"count", "coalesce"}).AddRow(int64(3), int64(980)))

	videos, views, err := repo.OwnerTotals(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), videos)
	assert.Equal(t, int64(980), views)
	assert.NoError(t, mock.ExpectationsWereMet())
}
