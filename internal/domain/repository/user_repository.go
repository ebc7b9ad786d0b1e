package repository

import (
	"context"
	"errors"

	"github.com/playtube/playtube-api/internal/domain/entity"
)

// Storage-level sentinels. Services translate these into the API error classes.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// UserRepository is the credential store boundary. All refresh-token mutations
// are atomic single-statement updates; ConditionalUpdateRefreshToken carries
// compare-and-swap semantics so two racing rotations have at most one winner.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmailOrUsername matches either field; empty arguments never match.
	GetByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)
	// GetByUsername matches case-insensitively (usernames are stored lowercased).
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	UpdateAccount(ctx context.Context, id, fullName, email string) (*entity.User, error)
	UpdateAvatar(ctx context.Context, id, avatarURL string) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, id, coverImageURL string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// SetRefreshToken overwrites the stored refresh token unconditionally
	// (login rotation point).
	SetRefreshToken(ctx context.Context, id, token string) error
	// ConditionalUpdateRefreshToken replaces the stored token only when it
	// still equals expectedOld. Returns false when another rotation won.
	ConditionalUpdateRefreshToken(ctx context.Context, id, expectedOld, newToken string) (bool, error)
	// ClearRefreshToken revokes the active refresh token. Idempotent.
	ClearRefreshToken(ctx context.Context, id string) error

	// AppendWatchHistory moves videoID to the tail of the user's watch
	// history, deduplicating an earlier occurrence.
	AppendWatchHistory(ctx context.Context, id, videoID string) error
}
