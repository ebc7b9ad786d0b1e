package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube/playtube-api/internal/application"
	"github.com/playtube/playtube-api/internal/container"
	"github.com/playtube/playtube-api/internal/infrastructure/media"
	pginfra "github.com/playtube/playtube-api/internal/infrastructure/postgres"
	"github.com/playtube/playtube-api/internal/infrastructure/search"
	handlers "github.com/playtube/playtube-api/internal/interface/http"
	"github.com/playtube/playtube-api/internal/router/modules"
	"github.com/playtube/playtube-api/pkg/response"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	db := container.GetPGPool()

	users := pginfra.NewUserRepository(db)
	videos := pginfra.NewVideoRepository(db)
	subs := pginfra.NewSubscriptionRepository(db)
	comments := pginfra.NewCommentRepository(db)
	likes := pginfra.NewLikeRepository(db)
	playlists := pginfra.NewPlaylistRepository(db)
	tweets := pginfra.NewTweetRepository(db)

	store := media.NewGCSStore(container.GetGCS(), cfg.GCSBucket)

	var mail application.EmailQueue
	if pub := container.GetRabbitPub(); pub != nil {
		mail = pub
	}
	var index application.VideoIndexer
	if es := container.GetES(); es != nil {
		index = search.NewVideoIndex(es, cfg.ESVideosIndex)
	}

	sessionSvc := application.NewSessionService(users, jwt, store, mail, logger)
	channelSvc := application.NewChannelService(users, subs, videos)
	videoSvc := application.NewVideoService(videos, users, store, index, logger)
	subSvc := application.NewSubscriptionService(subs, users)
	commentSvc := application.NewCommentService(comments, videos)
	likeSvc := application.NewLikeService(likes, videos, comments, tweets)
	playlistSvc := application.NewPlaylistService(playlists, videos)
	tweetSvc := application.NewTweetService(tweets)
	dashboardSvc := application.NewDashboardService(videos, subs, likes)

	userHandler := handlers.NewUserHandler(sessionSvc, channelSvc, logger, cfg.CookieDomain, cfg.CookieSecure)

	r.Add(NewHealthModule())
	r.Add(modules.NewUserModule(userHandler, jwt))
	r.Add(modules.NewVideoModule(handlers.NewVideoHandler(videoSvc), jwt))
	r.Add(modules.NewSubscriptionModule(handlers.NewSubscriptionHandler(subSvc), jwt))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc), jwt))
	r.Add(modules.NewLikeModule(handlers.NewLikeHandler(likeSvc), jwt))
	r.Add(modules.NewPlaylistModule(handlers.NewPlaylistHandler(playlistSvc), jwt))
	r.Add(modules.NewTweetModule(handlers.NewTweetHandler(tweetSvc), jwt))
	r.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(dashboardSvc), jwt))
}

// HealthModule answers liveness probes.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, "healthy", nil)
	})
}
