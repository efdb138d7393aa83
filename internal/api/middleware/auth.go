package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Wannasingh/wannasingh-blog/internal/auth"
	"github.com/Wannasingh/wannasingh-blog/internal/model"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
	"github.com/Wannasingh/wannasingh-blog/pkg/response"
)

const userKey = "currentUser"

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// authenticate verifies the bearer token and loads the profile row. The
// token proves identity; the profile row is the role authority. On failure
// the request is aborted with the proper status and false is returned.
func authenticate(c *gin.Context, jwt *auth.Manager, users repository.UserRepository) (*model.User, bool) {
	token := bearerToken(c)
	if token == "" {
		response.Unauthorized(c, "token missing")
		return nil, false
	}
	claims, err := jwt.Parse(token)
	if err != nil {
		response.Unauthorized(c, "invalid or expired token")
		return nil, false
	}
	u, err := users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "user not found")
			return nil, false
		}
		response.InternalError(c, err)
		return nil, false
	}
	return u, true
}

func RequireUser(jwt *auth.Manager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := authenticate(c, jwt, users)
		if !ok {
			return
		}
		c.Set(userKey, u)
		c.Next()
	}
}

func RequireAdmin(jwt *auth.Manager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := authenticate(c, jwt, users)
		if !ok {
			return
		}
		if u.Role != model.RoleAdmin {
			response.Forbidden(c, "admin access required")
			return
		}
		c.Set(userKey, u)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireUser/RequireAdmin.
func CurrentUser(c *gin.Context) *model.User {
	u, _ := c.MustGet(userKey).(*model.User)
	return u
}
