package postgres

import (
	"context"
	"fmt"

	"github.com/playtube/playtube-api/internal/domain/entity"
	"github.com/playtube/playtube-api/internal/domain/repository"
)

const videoColumns = `v.id, v.owner_id, v.title, v.description, v.video_url,
	v.thumbnail_url, v.duration, v.views, v.is_published, v.created_at, v.updated_at`

const ownerColumns = `o.id, o.username, o.avatar_url, o.full_name`

type VideoRepository struct {
	db DB
}

func NewVideoRepository(db DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, v *entity.Video) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO videos (owner_id, title, description, video_url, thumbnail_url, duration, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, views, created_at, updated_at
	`, v.OwnerID, v.Title, v.Description, v.VideoURL, v.ThumbnailURL, v.Duration, v.IsPublished)

	if err := row.Scan(&v.ID, &v.Views, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	v := &entity.Video{}
	err := r.db.QueryRow(ctx, `
		SELECT `+videoColumns+` FROM videos v WHERE v.id = $1
	`, id).Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL,
		&v.ThumbnailURL, &v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func (r *VideoRepository) GetWithOwner(ctx context.Context, id string) (*entity.VideoWithOwner, error) {
	v := &entity.VideoWithOwner{}
	err := r.db.QueryRow(ctx, `
		SELECT `+videoColumns+`, `+ownerColumns+`
		FROM videos v
		JOIN users o ON o.id = v.owner_id
		WHERE v.id = $1
	`, id).Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL,
		&v.ThumbnailURL, &v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
		&v.Owner.ID, &v.Owner.Username, &v.Owner.AvatarURL, &v.Owner.FullName,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

// ListByIDsOrdered resolves ids to videos preserving the input order exactly.
// The inner joins drop ids whose video (or owner) no longer exists.
func (r *VideoRepository) ListByIDsOrdered(ctx context.Context, ids []string) ([]entity.VideoWithOwner, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+videoColumns+`, `+ownerColumns+`
		FROM unnest($1::uuid[]) WITH ORDINALITY AS h(video_id, ord)
		JOIN videos v ON v.id = h.video_id
		JOIN users o ON o.id = v.owner_id
		ORDER BY h.ord
	`, ids)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.VideoWithOwner, 0, len(ids))
	for rows.Next() {
		var v entity.VideoWithOwner
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL,
			&v.ThumbnailURL, &v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
			&v.Owner.ID, &v.Owner.Username, &v.Owner.AvatarURL, &v.Owner.FullName,
		); err != nil {
			return nil, fmt.Errorf("scan video row: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VideoRepository) ListByOwner(ctx context.Context, ownerID string, includeUnpublished bool, limit, offset int) ([]entity.Video, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+videoColumns+`
		FROM videos v
		WHERE v.owner_id = $1 AND (v.is_published OR $2)
		ORDER BY v.created_at DESC
		LIMIT $3 OFFSET $4
	`, ownerID, includeUnpublished, limit, offset)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.Video, 0)
	for rows.Next() {
		var v entity.Video
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL,
			&v.ThumbnailURL, &v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan video row: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VideoRepository) Update(ctx context.Context, v *entity.Video) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE videos
		SET title = $2, description = $3, thumbnail_url = $4, updated_at = now()
		WHERE id = $1
	`, v.ID, v.Title, v.Description, v.ThumbnailURL)
	if err != nil {
		return mapError(err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("video: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("video: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *VideoRepository) SetPublished(ctx context.Context, id string, published bool) error {
	ct, err := r.db.Exec(ctx, `
		UPDATE videos SET is_published = $2, updated_at = now() WHERE id = $1
	`, id, published)
	if err != nil {
		return mapError(err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("video: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	return mapError(err)
}

func (r *VideoRepository) OwnerTotals(ctx context.Context, ownerID string) (int64, int64, error) {
	var videos, views int64
	err := r.db.QueryRow(ctx, `
		SELECT count(*), coalesce(sum(views), 0) FROM videos WHERE owner_id = $1
	`, ownerID).Scan(&videos, &views)
	if err != nil {
		return 0, 0, mapError(err)
	}
	return videos, views, nil
}

var _ repository.VideoRepository = (*VideoRepository)(nil)
