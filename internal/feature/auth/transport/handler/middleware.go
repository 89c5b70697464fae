package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/auth/domain/entity"
)

// ContextUser is the gin context key the session middleware stores the
// authenticated user under.
const ContextUser = "currentUser"

// SessionAuth returns a middleware that resolves the session cookie to a user
// and stores it in the request context. Requests without a valid session pass
// through unauthenticated; guarding is left to LoginRequired.
func SessionAuth(auth AuthUsecase, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err == nil && sessionID != "" {
			if user, err := auth.SessionUser(c.Request.Context(), sessionID); err == nil {
				c.Set(ContextUser, user)
			}
		}
		c.Next()
	}
}

// LoginRequired returns a middleware that redirects unauthenticated requests
// to the sign-in page. It must run after SessionAuth.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, "/signin/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}
