package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PS-gitpro/myblog/internal/auth"
	"github.com/PS-gitpro/myblog/internal/domain"
	"github.com/PS-gitpro/myblog/internal/repository"
)

const (
	// UserKey is the gin context key holding the authenticated *domain.User.
	UserKey = "current_user"
	// LoginPath is where unauthenticated requests get redirected.
	LoginPath = "/login/"
)

// CurrentUser resolves the session cookie to a user and stores it in
// the context. Anonymous requests pass through with no user set, so
// public routes stay open.
func CurrentUser(sessions *auth.Sessions, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessions.Resolve(c.Request.Context(), c.Request)
		if ok {
			user, err := users.GetByID(c.Request.Context(), userID)
			if err == nil && user != nil {
				c.Set(UserKey, user)
			}
		}
		c.Next()
	}
}

// RequireUser aborts anonymous requests with a redirect to the login
// page. The protected workflow never runs.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUser(c) == nil {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts requests from non-admin users. Admin routes
// answer 404 rather than advertising their existence.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.Next()
	}
}

// GetUser returns the authenticated user from the gin context, or nil.
func GetUser(c *gin.Context) *domain.User {
	if v, exists := c.Get(UserKey); exists {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}
