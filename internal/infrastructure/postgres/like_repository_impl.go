package postgres

import (
	"context"
	"fmt"

	"github.com/playtube/playtube-api/internal/domain/entity"
	"github.com/playtube/playtube-api/internal/domain/repository"
)

type LikeRepository struct {
	db DB
}

func NewLikeRepository(db DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Create(ctx context.Context, l *entity.Like) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO likes (owner_id, target_type, target_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, l.OwnerID, string(l.Target), l.TargetID)

	if err := row.Scan(&l.ID, &l.CreatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, ownerID string, target entity.LikeTarget, targetID string) error {
	ct, err := r.db.Exec(ctx, `
		DELETE FROM likes WHERE owner_id = $1 AND target_type = $2 AND target_id = $3
	`, ownerID, string(target), targetID)
	if err != nil {
		return mapError(err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("like: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *LikeRepository) Exists(ctx context.Context, ownerID string, target entity.LikeTarget, targetID string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM likes WHERE owner_id = $1 AND target_type = $2 AND target_id = $3)
	`, ownerID, string(target), targetID).Scan(&ok)
	if err != nil {
		return false, mapError(err)
	}
	return ok, nil
}

func (r *LikeRepository) CountByTarget(ctx context.Context, target entity.LikeTarget, targetID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `
		SELECT count(*) FROM likes WHERE target_type = $1 AND target_id = $2
	`, string(target), targetID).Scan(&n)
	if err != nil {
		return 0, mapError(err)
	}
	return n, nil
}

func (r *LikeRepository) ListLikedVideos(ctx context.Context, ownerID string) ([]entity.VideoWithOwner, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+videoColumns+`, `+ownerColumns+`
		FROM likes l
		JOIN videos v ON v.id = l.target_id
		JOIN users o ON o.id = v.owner_id
		WHERE l.owner_id = $1 AND l.target_type = 'video'
		ORDER BY l.created_at DESC
	`, ownerID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.VideoWithOwner, 0)
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

func (r *LikeRepository) CountForOwnerVideos(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `
		SELECT count(*)
		FROM likes l
		JOIN videos v ON v.id = l.target_id
		WHERE l.target_type = 'video' AND v.owner_id = $1
	`, ownerID).Scan(&n)
	if err != nil {
		return 0, mapError(err)
	}
	return n, nil
}

var _ repository.LikeRepository = (*LikeRepository)(nil)
