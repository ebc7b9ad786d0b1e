package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/playtube/playtube-api/internal/domain/entity"
	repo "github.com/playtube/playtube-api/internal/domain/repository"
	"github.com/playtube/playtube-api/internal/infrastructure/media"
	"github.com/playtube/playtube-api/pkg/apperrors"
	"github.com/playtube/playtube-api/pkg/helpers"
	"github.com/playtube/playtube-api/pkg/mailer"
)

// SessionService is the identity core: registration, credential verification,
// token lifecycle and the profile mutations that ride on the same record.
type SessionService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Media  media.Store
	Mail   EmailQueue
	Logger *logrus.Logger
}

func NewSessionService(users repo.UserRepository, jwt *helpers.JWTManager, store media.Store, mail EmailQueue, logger *logrus.Logger) *SessionService {
	return &SessionService{Users: users, JWT: jwt, Media: store, Mail: mail, Logger: logger}
}

type RegisterInput struct {
	Email    string
	Username string
	FullName string
	Password string
	Avatar   *Upload
	Cover    *Upload
}

// Register creates a new identity. Both uniqueness checks run independently;
// an email collision is reported before a username collision.
func (s *SessionService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	in.FullName = strings.TrimSpace(in.FullName)

	if in.Email == "" || in.Username == "" || in.FullName == "" || strings.TrimSpace(in.Password) == "" {
		return nil, apperrors.Validation("email, username, fullName and password are required")
	}
	if in.Avatar == nil {
		return nil, apperrors.Validation("avatar is required")
	}

	if taken, err := s.Users.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, storeErr(err, "user")
	} else if taken {
		return nil, apperrors.Conflict("user", "email", in.Email)
	}
	if taken, err := s.Users.ExistsByUsername(ctx, in.Username); err != nil {
		return nil, storeErr(err, "user")
	} else if taken {
		return nil, apperrors.Conflict("user", "username", in.Username)
	}

	avatarURL, err := s.Media.Upload(ctx, "avatars", in.Avatar.Filename, in.Avatar.ContentType, in.Avatar.Reader)
	if err != nil {
		return nil, apperrors.Dependency("avatar upload failed", err)
	}
	coverURL := ""
	if in.Cover != nil {
		coverURL, err = s.Media.Upload(ctx, "covers", in.Cover.Filename, in.Cover.ContentType, in.Cover.Reader)
		if err != nil {
			return nil, apperrors.Dependency("cover image upload failed", err)
		}
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperrors.Dependency("password hashing failed", err)
	}

	u := &entity.User{
		Username:      in.Username,
		Email:         in.Email,
		FullName:      in.FullName,
		Password:      hash,
		AvatarURL:     avatarURL,
		CoverImageURL: coverURL,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apperrors.Conflict("user", "email or username", in.Email)
		}
		return nil, storeErr(err, "user")
	}

	s.enqueueWelcomeMail(ctx, u)
	return u, nil
}

func (s *SessionService) enqueueWelcomeMail(ctx context.Context, u *entity.User) {
	if s.Mail == nil {
		return
	}
	job := mailer.WelcomeJob(u.Email, u.Username, u.FullName)
	if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("enqueue welcome email failed")
	}
}

type LoginInput struct {
	Email    string
	Username string
	Password string
}

// Login verifies credentials and rotates the stored refresh token
// unconditionally. The returned pair is turned into cookies by the handler.
func (s *SessionService) Login(ctx context.Context, in LoginInput) (*entity.User, TokenPair, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	if in.Email == "" && in.Username == "" {
		return nil, TokenPair{}, apperrors.Validation("email or username is required")
	}

	u, err := s.Users.GetByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, TokenPair{}, apperrors.NotFound("user not found")
		}
		return nil, TokenPair{}, storeErr(err, "user")
	}
	if !helpers.CompareHashAndPassword(u.Password, in.Password) {
		return nil, TokenPair{}, apperrors.Auth("invalid credentials")
	}

	pair, err := s.issuePair(u.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if err := s.Users.SetRefreshToken(ctx, u.ID, pair.RefreshToken); err != nil {
		return nil, TokenPair{}, storeErr(err, "user")
	}
	return u, pair, nil
}

// Logout revokes the stored refresh token. Idempotent; logging out twice or
// with no active session is not an error.
func (s *SessionService) Logout(ctx context.Context, userID string) error {
	if err := s.Users.ClearRefreshToken(ctx, userID); err != nil {
		return apperrors.Dependency("revoke refresh token failed", err)
	}
	return nil
}

// Refresh exchanges a valid, current refresh token for a new pair. Every
// failure on this path reads the same from outside regardless of which check
// tripped: bad signature, expiry, unknown identity or a superseded token.
func (s *SessionService) Refresh(ctx context.Context, presented string) (TokenPair, error) {
	fail := func() (TokenPair, error) {
		return TokenPair{}, apperrors.Auth("invalid refresh token")
	}

	if strings.TrimSpace(presented) == "" {
		return fail()
	}
	claims, err := s.JWT.ParseRefreshToken(presented)
	if err != nil {
		return fail()
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return fail()
	}
	if u.RefreshToken == "" || u.RefreshToken != presented {
		return fail()
	}

	pair, err := s.issuePair(u.ID)
	if err != nil {
		return TokenPair{}, err
	}
	rotated, err := s.Users.ConditionalUpdateRefreshToken(ctx, u.ID, presented, pair.RefreshToken)
	if err != nil {
		return TokenPair{}, storeErr(err, "user")
	}
	if !rotated {
		// A concurrent refresh won the rotation race.
		return fail()
	}
	return pair, nil
}

// ChangePassword swaps the stored hash. The refresh token is left untouched,
// so existing sessions survive a password change.
func (s *SessionService) ChangePassword(ctx context.Context, userID, current, newPassword string) error {
	if strings.TrimSpace(current) == "" || strings.TrimSpace(newPassword) == "" {
		return apperrors.Validation("current and new password are required")
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return storeErr(err, "user")
	}
	if !helpers.CompareHashAndPassword(u.Password, current) {
		return apperrors.Auth("current password is incorrect")
	}
	if helpers.CompareHashAndPassword(u.Password, newPassword) {
		return apperrors.Validation("new password must differ from the current password")
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return apperrors.Dependency("password hashing failed", err)
	}
	return storeErr(s.Users.UpdatePassword(ctx, userID, hash), "user")
}

func (s *SessionService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "user")
	}
	return u, nil
}

func (s *SessionService) UpdateAccount(ctx context.Context, userID, fullName, email string) (*entity.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" || email == "" {
		return nil, apperrors.Validation("fullName and email are required")
	}
	u, err := s.Users.UpdateAccount(ctx, userID, fullName, email)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apperrors.Conflict("user", "email", email)
		}
		return nil, storeErr(err, "user")
	}
	return u, nil
}

// UpdateAvatar uploads the replacement first, commits the URL, then deletes
// the previous object best-effort. A failed delete is logged and swallowed;
// it never rolls back the committed profile update.
func (s *SessionService) UpdateAvatar(ctx context.Context, userID string, up *Upload) (*entity.User, error) {
	return s.swapImage(ctx, userID, up, "avatars",
		func(u *entity.User) string { return u.AvatarURL },
		s.Users.UpdateAvatar)
}

func (s *SessionService) UpdateCoverImage(ctx context.Context, userID string, up *Upload) (*entity.User, error) {
	return s.swapImage(ctx, userID, up, "covers",
		func(u *entity.User) string { return u.CoverImageURL },
		s.Users.UpdateCoverImage)
}

func (s *SessionService) swapImage(
	ctx context.Context,
	userID string,
	up *Upload,
	folder string,
	oldURL func(*entity.User) string,
	persist func(ctx context.Context, id, url string) (*entity.User, error),
) (*entity.User, error) {
	if up == nil {
		return nil, apperrors.Validation("image file is required")
	}
	current, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "user")
	}

	url, err := s.Media.Upload(ctx, folder, up.Filename, up.ContentType, up.Reader)
	if err != nil {
		return nil, apperrors.Dependency("image upload failed", err)
	}
	updated, err := persist(ctx, userID, url)
	if err != nil {
		return nil, storeErr(err, "user")
	}

	if old := oldURL(current); old != "" {
		if err := s.Media.Delete(ctx, old); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{"user_id": userID, "url": old}).
				Warn("delete of replaced image failed")
		}
	}
	return updated, nil
}

func (s *SessionService) issuePair(userID string) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(userID)
	if err != nil {
		return TokenPair{}, apperrors.Dependency("access token generation failed", err)
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(userID)
	if err != nil {
		return TokenPair{}, apperrors.Dependency("refresh token generation failed", err)
	}
	return TokenPair{
		AccessToken:        access,
		AccessTokenExpiry:  aexp,
		RefreshToken:       refresh,
		RefreshTokenExpiry: rexp,
	}, nil
}
