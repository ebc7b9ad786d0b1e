package postgres

import (
	"context"
	"fmt"

	"github.com/playtube/playtube-api/internal/domain/entity"
	"github.com/playtube/playtube-api/internal/domain/repository"
)

type CommentRepository struct {
	db DB
}

func NewCommentRepository(db DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO comments (video_id, owner_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.VideoID, c.OwnerID, c.Content)

	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	c := &entity.Comment{}
	err := r.db.QueryRow(ctx, `
		SELECT id, video_id, owner_id, content, created_at, updated_at
		FROM comments WHERE id = $1
	`, id).Scan(&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) (*entity.Comment, error) {
	c := &entity.Comment{}
	err := r.db.QueryRow(ctx, `
		UPDATE comments SET content = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, video_id, owner_id, content, created_at, updated_at
	`, id, content).Scan(&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("comment: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]entity.CommentWithOwner, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.video_id, c.owner_id, c.content, c.created_at, c.updated_at,
			o.id, o.username, o.avatar_url, o.full_name
		FROM comments c
		JOIN users o ON o.id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`, videoID, limit, offset)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.CommentWithOwner, 0)
	for rows.Next() {
		var c entity.CommentWithOwner
		if err := rows.Scan(
			&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
			&c.Owner.ID, &c.Owner.Username, &c.Owner.AvatarURL, &c.Owner.FullName,
		); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
