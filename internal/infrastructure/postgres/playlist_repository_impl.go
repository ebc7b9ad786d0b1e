package postgres

import (
	"context"
	"fmt"

	"github.com/playtube/playtube-api/internal/domain/entity"
	"github.com/playtube/playtube-api/internal/domain/repository"
)

const playlistColumns = `p.id, p.owner_id, p.name, p.description,
	coalesce(array_agg(pv.video_id ORDER BY pv.position) FILTER (WHERE pv.video_id IS NOT NULL), '{}'),
	p.created_at, p.updated_at`

const playlistGroup = `GROUP BY p.id, p.owner_id, p.name, p.description, p.created_at, p.updated_at`

type PlaylistRepository struct {
	db DB
}

func NewPlaylistRepository(db DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) Create(ctx context.Context, p *entity.Playlist) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO playlists (owner_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.OwnerID, p.Name, p.Description)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return mapError(err)
	}
	p.VideoIDs = []string{}
	return nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	return r.scanPlaylist(ctx, `
		SELECT `+playlistColumns+`
		FROM playlists p
		LEFT JOIN playlist_videos pv ON pv.playlist_id = p.id
		WHERE p.id = $1
		`+playlistGroup, id)
}

func (r *PlaylistRepository) Update(ctx context.Context, id, name, description string) (*entity.Playlist, error) {
	ct, err := r.db.Exec(ctx, `
		UPDATE playlists SET name = $2, description = $3, updated_at = now() WHERE id = $1
	`, id, name, description)
	if err != nil {
		return nil, mapError(err)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("playlist: %w", repository.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("playlist: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Playlist, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+playlistColumns+`
		FROM playlists p
		LEFT JOIN playlist_videos pv ON pv.playlist_id = p.id
		WHERE p.owner_id = $1
		`+playlistGroup+`
		ORDER BY p.created_at DESC
	`, ownerID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.Playlist, 0)
	for rows.Next() {
		var p entity.Playlist
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.VideoIDs,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan playlist row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AddVideo appends the video at the next position; re-adding an already
// present video is a duplicate.
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO playlist_videos (playlist_id, video_id, position)
		SELECT $1, $2, coalesce(max(position), 0) + 1
		FROM playlist_videos WHERE playlist_id = $1
	`, playlistID, videoID)
	return mapError(err)
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	ct, err := r.db.Exec(ctx, `
		DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2
	`, playlistID, videoID)
	if err != nil {
		return mapError(err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("playlist video: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *PlaylistRepository) scanPlaylist(ctx context.Context, query string, args ...any) (*entity.Playlist, error) {
	p := &entity.Playlist{}
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.VideoIDs,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

var _ repository.PlaylistRepository = (*PlaylistRepository)(nil)
