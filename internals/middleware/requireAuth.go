package middleware

import (
	"net/http"
	"strings"

	"github.com/Shubhamsh1838/Highway-delite/internals/store"
	"github.com/Shubhamsh1838/Highway-delite/internals/utils"

	"github.com/gin-gonic/gin"
)

// UserKey is the gin context key the resolved user is stored under.
const UserKey = "user"

type RequireAuthMiddleware struct {
	Users        *store.UserStore
	TokenManager *utils.TokenManager
}

func NewRequireAuthMiddleware(users *store.UserStore, tokenManager *utils.TokenManager) *RequireAuthMiddleware {
	return &RequireAuthMiddleware{
		Users:        users,
		TokenManager: tokenManager,
	}
}

// RequireAuth gates protected routes behind a bearer token. Missing header,
// wrong scheme, bad token, and deleted user all produce the same 401 so the
// caller learns nothing about which check failed.
func (m *RequireAuthMiddleware) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		m.unauthorized(c)
		return
	}

	userID, err := m.TokenManager.Validate(strings.TrimPrefix(header, prefix))
	if err != nil {
		m.unauthorized(c)
		return
	}

	user, err := m.Users.FindByID(userID)
	if err != nil {
		m.unauthorized(c)
		return
	}

	c.Set(UserKey, user)
	c.Next()
}

func (m *RequireAuthMiddleware) unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Not authorized to access this route",
	})
}
