package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shiosai/vodfront/internal/config"
	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/handler"
	"github.com/shiosai/vodfront/internal/handler/middleware"
	"github.com/shiosai/vodfront/internal/infrastructure/logging"
	"github.com/shiosai/vodfront/internal/infrastructure/redis"
	"github.com/shiosai/vodfront/internal/infrastructure/s3"
	"github.com/shiosai/vodfront/internal/infrastructure/transcode"
	"github.com/shiosai/vodfront/internal/usecase"
)

const (
	readTimeout  = 30 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 120 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: logging.MaskSensitiveAttrs,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// ローカル開発用の.envは存在すれば読み込む
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	redisConn, err := redis.NewRedisConnection(redis.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = redisConn.Close() }()
	redisClient := redis.NewRedisClient(redisConn)
	slog.Info("Redis connection established")

	s3Conn, err := s3.NewS3Connection(s3.S3Config{
		Endpoint:        cfg.S3.Endpoint,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Region:          cfg.S3.Region,
	})
	if err != nil {
		return err
	}
	s3Client := s3.NewS3Client(s3Conn, cfg.S3.VODBucket)
	slog.Info("S3 connection established")

	transcodeClient, err := transcode.NewClient(cfg.Transcoder.Endpoint, cfg.Transcoder.APIKey)
	if err != nil {
		return err
	}

	artifactCache := redis.NewArtifactCache(redisClient)
	cacheConfig := redis.NewCacheConfigWithTTLs(
		cfg.Cache.PlaylistTTL,
		cfg.Cache.ThumbnailTTL,
		cfg.Cache.LockTTL,
	)

	policy, err := usecase.NewCoordinatorPolicy(cfg.Coordinator.Policy)
	if err != nil {
		return err
	}

	rewriter := usecase.NewPlaylistRewriter(s3Client, cfg.S3.VODBucket)
	playbackUC := usecase.NewPlaybackUseCase(
		artifactCache,
		cacheConfig,
		s3Client,
		transcodeClient,
		rewriter,
		cfg.S3.VODBucket,
		policy,
	)
	thumbnailUC := usecase.NewThumbnailUseCase(
		artifactCache,
		cacheConfig,
		s3Client,
		s3Client,
		policy,
	)
	invalidationUC := usecase.NewInvalidationUseCase(artifactCache, s3Client, cfg.S3.VODBucket)

	redisHealthChecker := redis.NewRedisHealthChecker(redisClient)
	s3HealthChecker := s3.NewS3HealthChecker(s3Client)
	readinessUC := usecase.NewReadinessUseCase(
		redisHealthChecker,
		s3HealthChecker,
	)

	credential, err := domain.NewAPICredential(cfg.Auth.APISecret)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", middleware.MaskSensitiveParams(v.URI)),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "REQUEST", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "REQUEST", attrs...)
			}
			return nil
		},
	}))
	e.Use(middleware.Metrics())

	e.GET("/healthz", handler.HealthHandler)

	readyzHandler := handler.NewReadyzHandler(readinessUC)
	e.GET("/readyz", readyzHandler.Handle)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	playlistHandler := handler.NewPlaylistHandler(playbackUC, cfg.S3.SourceBucket)
	e.GET("/video/:video/playlist.m3u8", playlistHandler.HandleVideoPlaylist)

	streamHandler := handler.NewStreamHandler(playbackUC, thumbnailUC)
	e.GET("/stream/:bucket/*", streamHandler.Handle)

	thumbnailHandler := handler.NewThumbnailHandler(thumbnailUC)
	e.GET("/asset/:bucket/*", thumbnailHandler.HandleAssetThumbnail)

	requireAPIKey := middleware.RequireAPIKey(credential)
	cacheHandler := handler.NewCacheHandler(invalidationUC, cfg.S3.SourceBucket)
	derivedHandler := handler.NewDerivedHandler(invalidationUC)

	adminGroup := e.Group("", requireAPIKey)
	adminGroup.DELETE("/cache/video/:video", cacheHandler.HandleInvalidateVideo)
	adminGroup.DELETE("/cache/img/*", cacheHandler.HandleInvalidateImage)
	adminGroup.DELETE("/derived/:bucket/*", derivedHandler.HandleDeleteDerived)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("received shutdown signal")
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	if err := e.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}
