package api

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Wannasingh/wannasingh-blog/config"
	"github.com/Wannasingh/wannasingh-blog/internal/api/handler"
	"github.com/Wannasingh/wannasingh-blog/internal/api/middleware"
	"github.com/Wannasingh/wannasingh-blog/internal/auth"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
	"github.com/Wannasingh/wannasingh-blog/pkg/logger"
	"github.com/Wannasingh/wannasingh-blog/pkg/response"
)

// NewRouter wires middleware and the full route surface.
func NewRouter(cfg *config.Config, h *handler.Handler, jwtMgr *auth.Manager, users repository.UserRepository) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	r.Use(accessLog())
	r.Use(gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		if hub := sentry.CurrentHub(); hub.Client() != nil {
			hub.Recover(err)
		}
		logger.Error("panic recovered", zap.Any("error", err))
		response.InternalError(c, nil)
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Tracing.Endpoint != "" {
		r.Use(otelgin.Middleware("wannasingh-blog"))
	}
	r.Use(middleware.RateLimit(rate.Limit(50), 100))

	requireUser := middleware.RequireUser(jwtMgr, users)
	requireAdmin := middleware.RequireAdmin(jwtMgr, users)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Welcome to my API!")
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/get-user", requireUser, h.GetUser)
		authGroup.PUT("/reset-password", requireUser, h.ResetPassword)
	}

	posts := r.Group("/posts")
	{
		posts.GET("", h.ListPosts)
		posts.GET("/admin", requireAdmin, h.AdminListPosts)
		posts.GET("/admin/:postId", requireAdmin, h.AdminGetPost)
		posts.GET("/:postId", h.GetPost)
		posts.POST("", requireAdmin, h.CreatePost)
		posts.PUT("/:postId", requireAdmin, h.UpdatePost)
		posts.DELETE("/:postId", requireAdmin, h.DeletePost)

		posts.GET("/:postId/comments", h.ListComments)
		posts.POST("/:postId/comments", requireUser, h.CreateComment)
		posts.GET("/:postId/likes", h.CountLikes)
		posts.POST("/:postId/likes", requireUser, h.CreateLike)
		posts.DELETE("/:postId/likes", requireUser, h.DeleteLike)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:categoryId", h.GetCategory)
		categories.POST("", requireAdmin, h.CreateCategory)
		categories.PUT("/:categoryId", requireAdmin, h.UpdateCategory)
		categories.DELETE("/:categoryId", requireAdmin, h.DeleteCategory)
	}

	profiles := r.Group("/profiles")
	{
		profiles.GET("/author", h.Author)
		profiles.GET("/:userId", h.GetProfile)
		profiles.PUT("", requireUser, h.UpdateProfile)
	}

	messages := r.Group("/messages", requireUser)
	{
		messages.GET("/conversations", h.Conversations)
		messages.GET("/unread/count", h.UnreadMessageCount)
		messages.POST("/typing", h.SetTyping)
		messages.GET("/typing/:userId", h.GetTyping)
		messages.GET("/:userId", h.ListMessages)
		messages.POST("", h.SendMessage)
	}

	notifications := r.Group("/notifications", requireAdmin)
	{
		notifications.GET("", h.ListNotifications)
		notifications.GET("/unread-count", h.UnreadNotificationCount)
		notifications.PUT("/read-all", h.MarkAllNotificationsRead)
		notifications.PUT("/:id/read", h.MarkNotificationRead)
	}

	return r
}

// accessLog logs one line per request with latency and status.
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
