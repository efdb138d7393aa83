package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Wannasingh/wannasingh-blog/config"
	"github.com/Wannasingh/wannasingh-blog/internal/api"
	"github.com/Wannasingh/wannasingh-blog/internal/api/handler"
	"github.com/Wannasingh/wannasingh-blog/internal/auth"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
	"github.com/Wannasingh/wannasingh-blog/internal/service"
	"github.com/Wannasingh/wannasingh-blog/pkg/database"
	"github.com/Wannasingh/wannasingh-blog/pkg/logger"
	"github.com/Wannasingh/wannasingh-blog/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Server.Mode); err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx := context.Background()
	if cfg.Tracing.Endpoint != "" {
		shutdown, err := tracing.Init(ctx, cfg.Tracing.Endpoint, "wannasingh-blog")
		if err != nil {
			logger.Warn("tracing init failed", zap.Error(err))
		} else {
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = shutdown(sctx)
			}()
		}
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("init database failed", zap.Error(err))
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.InitRedis(cfg)
		if err != nil {
			logger.Error("init redis failed", zap.Error(err))
			os.Exit(1)
		}
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	jwtMgr := auth.NewManager(cfg.JWT.Secret, cfg.JWT.TTL)

	notifier := service.NewNotifier(notifRepo, 4096)
	stopNotifier := notifier.Start(2)

	// the typing store and badge cache upgrade to redis when available;
	// the in-memory fallback is fine for a single instance
	var typingStore service.TypingStore = service.NewMemoryTypingStore()
	var badges *service.BadgeCache
	if redisClient != nil {
		typingStore = service.NewRedisTypingStore(redisClient)
		badges = service.NewBadgeCache(redisClient)
	}

	h := handler.New(
		service.NewAuthService(userRepo, jwtMgr),
		service.NewPostService(postRepo),
		service.NewCategoryService(categoryRepo),
		service.NewCommentService(commentRepo, postRepo, notifier),
		service.NewLikeService(likeRepo, postRepo, notifier),
		service.NewProfileService(userRepo),
		service.NewMessageService(messageRepo, userRepo, badges),
		service.NewNotificationService(notifRepo, postRepo, badges),
		typingStore,
	)

	router := api.NewRouter(cfg, h, jwtMgr, userRepo)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	_ = stopNotifier(shutdownCtx)
}
