package postgres

import (
	"context"
	"fmt"

	"github.com/playtube/playtube-api/internal/domain/entity"
	"github.com/playtube/playtube-api/internal/domain/repository"
)

type TweetRepository struct {
	db DB
}

func NewTweetRepository(db DB) *TweetRepository {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) Create(ctx context.Context, t *entity.Tweet) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO tweets (owner_id, content)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, t.OwnerID, t.Content)

	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id string) (*entity.Tweet, error) {
	t := &entity.Tweet{}
	err := r.db.QueryRow(ctx, `
		SELECT id, owner_id, content, created_at, updated_at FROM tweets WHERE id = $1
	`, id).Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id, content string) (*entity.Tweet, error) {
	t := &entity.Tweet{}
	err := r.db.QueryRow(ctx, `
		UPDATE tweets SET content = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, owner_id, content, created_at, updated_at
	`, id, content).Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("tweet: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Tweet, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, content, created_at, updated_at
		FROM tweets WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.Tweet, 0)
	for rows.Next() {
		var t entity.Tweet
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tweet row: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

var _ repository.TweetRepository = (*TweetRepository)(nil)
