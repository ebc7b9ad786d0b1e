package postgres

import (
	"context"
	"fmt"

	"github.com/playtube/playtube-api/internal/domain/entity"
	"github.com/playtube/playtube-api/internal/domain/repository"
)

const userColumns = `id, username, email, full_name, password_hash, avatar_url,
	coalesce(cover_image_url, ''), coalesce(refresh_token, ''), watch_history,
	created_at, updated_at`

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (username, email, full_name, password_hash, avatar_url, cover_image_url)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING id, created_at, updated_at
	`, u.Username, u.Email, u.FullName, u.Password, u.AvatarURL, u.CoverImageURL)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.scanUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	return r.scanUser(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE (email = $1 AND $1 <> '') OR (username = lower($2) AND $2 <> '')
	`, email, username)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.scanUser(ctx, `SELECT `+userColumns+` FROM users WHERE username = lower($1)`, username)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = lower($1))`, username)
}

func (r *UserRepository) UpdateAccount(ctx context.Context, id, fullName, email string) (*entity.User, error) {
	return r.scanUser(ctx, `
		UPDATE users SET full_name = $2, email = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, fullName, email)
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id, avatarURL string) (*entity.User, error) {
	return r.scanUser(ctx, `
		UPDATE users SET avatar_url = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, avatarURL)
}

func (r *UserRepository) UpdateCoverImage(ctx context.Context, id, coverImageURL string) (*entity.User, error) {
	return r.scanUser(ctx, `
		UPDATE users SET cover_image_url = NULLIF($2, ''), updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, coverImageURL)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.execOne(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1
	`, id, passwordHash)
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	return r.execOne(ctx, `
		UPDATE users SET refresh_token = $2, updated_at = now() WHERE id = $1
	`, id, token)
}

// ConditionalUpdateRefreshToken is the compare-and-swap rotation step: the
// update applies only while the stored token still equals expectedOld, so of
// two racing refreshes exactly one observes a row update.
func (r *UserRepository) ConditionalUpdateRefreshToken(ctx context.Context, id, expectedOld, newToken string) (bool, error) {
	ct, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = $3, updated_at = now()
		WHERE id = $1 AND refresh_token = $2
	`, id, expectedOld, newToken)
	if err != nil {
		return false, mapError(err)
	}
	return ct.RowsAffected() == 1, nil
}

func (r *UserRepository) ClearRefreshToken(ctx context.Context, id string) error {
	// no row check: clearing an unknown or already-cleared id is a no-op
	_, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = NULL, updated_at = now() WHERE id = $1
	`, id)
	return mapError(err)
}

func (r *UserRepository) AppendWatchHistory(ctx context.Context, id, videoID string) error {
	return r.execOne(ctx, `
		UPDATE users
		SET watch_history = array_append(array_remove(watch_history, $2::uuid), $2::uuid)
		WHERE id = $1
	`, id, videoID)
}

func (r *UserRepository) scanUser(ctx context.Context, query string, args ...any) (*entity.User, error) {
	u := &entity.User{}
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.Password, &u.AvatarURL,
		&u.CoverImageURL, &u.RefreshToken, &u.WatchHistory,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *UserRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, mapError(err)
	}
	return ok, nil
}

func (r *UserRepository) execOne(ctx context.Context, query string, args ...any) error {
	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("user: %w", repository.ErrNotFound)
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
