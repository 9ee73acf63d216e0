package main

import (
	"context"

	firebaseAuth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/okabanov/socialite/internal/router"
	"github.com/okabanov/socialite/pkg/config"
	"github.com/okabanov/socialite/pkg/firebase"
	"github.com/okabanov/socialite/pkg/logger"
	"github.com/okabanov/socialite/pkg/monitoring"
	"github.com/okabanov/socialite/pkg/storage"
	"github.com/okabanov/socialite/validators"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger.InitLogger(cfg.Env, cfg.LogFile)
	defer logger.Log.Sync()

	monitoring.Init()

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.CloseDB()
	logger.Log.Info("connected to PostgreSQL")

	ctx := context.Background()

	// Firebase login is optional; without credentials the rest of the API
	// still works against local JWT auth.
	var authClient *firebaseAuth.Client
	if cfg.FirebaseCredentialsPath != "" {
		authClient, err = firebase.NewAuthClient(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			logger.Log.Fatal("failed to initialize Firebase", zap.Error(err))
		}
		logger.Log.Info("Firebase auth client initialized")
	}

	// Media storage is optional as well.
	var mediaStore *storage.MediaStore
	if cfg.MinioEndpoint != "" {
		mediaStore, err = storage.NewMediaStore(ctx,
			cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
			cfg.MinioBucket, cfg.MinioPublicURL, cfg.MinioUseSSL)
		if err != nil {
			logger.Log.Fatal("failed to initialize media storage", zap.Error(err))
		}
		logger.Log.Info("media storage initialized", zap.String("bucket", cfg.MinioBucket))
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e)
	if err := router.SetupRoutes(e, db.Postgres, authClient, mediaStore, cfg.JWTSecret); err != nil {
		logger.Log.Fatal("failed to set up routes", zap.Error(err))
	}

	logger.Log.Info("starting server", zap.String("port", cfg.Port))
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
