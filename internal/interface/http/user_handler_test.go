package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-api/internal/application"
	"github.com/playtube/playtube-api/internal/domain/entity"
	"github.com/playtube/playtube-api/internal/domain/repository"
	"github.com/playtube/playtube-api/pkg/helpers"
	"github.com/playtube/playtube-api/pkg/validation"
)

// stubUserRepo serves a single fixed user; only the methods the login path
// touches do anything.
type stubUserRepo struct {
	user         *entity.User
	storedRotate string
}

func (s *stubUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }
func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) GetByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	if s.user != nil && (s.user.Email == email || s.user.Username == username) {
		return s.user, nil
	}
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (s *stubUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}
func (s *stubUserRepo) UpdateAccount(ctx context.Context, id, fullName, email string) (*entity.User, error) {
	return s.user, nil
}
func (s *stubUserRepo) UpdateAvatar(ctx context.Context, id, avatarURL string) (*entity.User, error) {
	return s.user, nil
}
func (s *stubUserRepo) UpdateCoverImage(ctx context.Context, id, coverImageURL string) (*entity.User, error) {
	return s.user, nil
}
func (s *stubUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return nil
}
func (s *stubUserRepo) SetRefreshToken(ctx context.Context, id, token string) error {
	s.storedRotate = token
	return nil
}
func (s *stubUserRepo) ConditionalUpdateRefreshToken(ctx context.Context, id, expectedOld, newToken string) (bool, error) {
	return false, nil
}
func (s *stubUserRepo) ClearRefreshToken(ctx context.Context, id string) error { return nil }
func (s *stubUserRepo) AppendWatchHistory(ctx context.Context, id, videoID string) error {
	return nil
}

func loginTestRouter(t *testing.T, repo *stubUserRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Minute, time.Hour)
	sessions := application.NewSessionService(repo, jwt, nil, nil, nil)
	h := NewUserHandler(sessions, nil, nil, "localhost", false)

	r := gin.New()
	r.POST("/api/v1/users/login", h.Login)
	return r
}

func TestLogin_SetsBothSessionCookies(t *testing.T) {
	hash, err := helpers.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	repo := &stubUserRepo{user: &entity.User{
		ID:       "7f9c35b4-1111-4222-8333-444455556666",
		Username: "maria",
		Email:    "maria@example.com",
		FullName: "Maria Silva",
		Password: hash,
	}}
	r := loginTestRouter(t, repo)

	body := `{"username":"maria","password":"correct-horse-battery"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	res := w.Result()
	names := map[string]*http.Cookie{}
	for _, ck := range res.Cookies() {
		names[ck.Name] = ck
	}
	require.Contains(t, names, "accessToken")
	require.Contains(t, names, "refreshToken")
	assert.True(t, names["accessToken"].HttpOnly)
	assert.True(t, names["refreshToken"].HttpOnly)
	assert.NotEqual(t, names["accessToken"].Value, names["refreshToken"].Value)

	// The cookie refresh token is the one persisted for rotation.
	assert.Equal(t, repo.storedRotate, names["refreshToken"].Value)

	// Secret material never leaks into the response body.
	assert.NotContains(t, w.Body.String(), hash)
}

func TestLogin_WrongPasswordIsUnauthorizedAndCookieFree(t *testing.T) {
	hash, err := helpers.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	repo := &stubUserRepo{user: &entity.User{
		ID:       "7f9c35b4-1111-4222-8333-444455556666",
		Username: "maria",
		Email:    "maria@example.com",
		Password: hash,
	}}
	r := loginTestRouter(t, repo)

	body := `{"username":"maria","password":"wrong-password-entirely"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLogin_ShortPasswordFailsBinding(t *testing.T) {
	r := loginTestRouter(t, &stubUserRepo{})

	body := `{"username":"maria","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
