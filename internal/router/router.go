package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/okabanov/socialite/internal/handlers"
	"github.com/okabanov/socialite/internal/middleware"
	"github.com/okabanov/socialite/internal/models"
	"github.com/okabanov/socialite/internal/repositories"
	"github.com/okabanov/socialite/pkg/logger"
	"github.com/okabanov/socialite/pkg/monitoring"
	"github.com/okabanov/socialite/pkg/storage"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.RequestID())
	e.Use(monitoring.MetricsMiddleware())
}

// SetupRoutes runs migrations, wires repositories into handlers and
// registers all routes. firebaseAuthClient and mediaStore may be nil when
// the corresponding integration is not configured.
func SetupRoutes(e *echo.Echo, db *gorm.DB, firebaseAuthClient *auth.Client, mediaStore *storage.MediaStore, jwtSecret string) error {
	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.FriendEdge{},
		&models.SharedPost{},
		&models.Notification{},
	); err != nil {
		return err
	}
	logger.Log.Info("database migrations completed")

	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", monitoring.PrometheusHandler())

	// Repositories
	profileRepo := repositories.NewPostgresProfileRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	friendRepo := repositories.NewPostgresFriendRepository(db)
	shareRepo := repositories.NewPostgresShareRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(profileRepo, firebaseAuthClient, jwtSecret)
	profileHandler := handlers.NewProfileHandler(profileRepo, friendRepo)
	postHandler := handlers.NewPostHandler(postRepo, profileRepo)
	feedHandler := handlers.NewFeedHandler(postRepo, profileRepo, likeRepo, commentRepo, shareRepo)
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, notificationRepo)
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, profileRepo, notificationRepo)
	shareHandler := handlers.NewShareHandler(shareRepo, postRepo, profileRepo, notificationRepo)
	friendHandler := handlers.NewFriendHandler(friendRepo, profileRepo, notificationRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	mediaHandler := handlers.NewMediaHandler(mediaStore)

	// Unauthenticated routes
	authGroup := e.Group("/api/v1/auth")
	authHandler.RegisterAuthRoutes(authGroup)

	// Read paths open to anonymous viewers. The optional JWT middleware
	// resolves the viewer identity so the visibility predicate sees the real
	// caller when a token is present.
	public := e.Group("/api/v1")
	public.Use(middleware.OptionalJWTMiddleware(jwtSecret))
	feedHandler.RegisterFeedRoutes(public)
	postHandler.RegisterPublicPostRoutes(public)
	commentHandler.RegisterPublicCommentRoutes(public)
	likeHandler.RegisterPublicLikeRoutes(public)
	shareHandler.RegisterPublicShareRoutes(public)
	profileHandler.RegisterPublicProfileRoutes(public)

	// Routes requiring an authenticated identity
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(jwtSecret))
	profileHandler.RegisterProfileRoutes(api)
	postHandler.RegisterPostRoutes(api)
	likeHandler.RegisterLikeRoutes(api)
	commentHandler.RegisterCommentRoutes(api)
	shareHandler.RegisterShareRoutes(api)
	friendHandler.RegisterFriendRoutes(api)
	notificationHandler.RegisterNotificationRoutes(api)
	mediaHandler.RegisterMediaRoutes(api)

	logger.Log.Info("all routes configured")
	return nil
}
