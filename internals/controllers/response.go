package controllers

import (
	"github.com/Shubhamsh1838/Highway-delite/internals/middleware"
	"github.com/Shubhamsh1838/Highway-delite/internals/models"

	"github.com/gin-gonic/gin"
)

// Every response uses the same envelope: {success, message?, token?, data?}.
// Failures carry only success:false and a stable human-readable message.

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// userData is the public profile shape. Password hashes and OTP state never
// leave the server.
func userData(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	}
}

// currentUser pulls the user the auth middleware resolved. Only call from
// handlers behind RequireAuth.
func currentUser(c *gin.Context) (*models.User, bool) {
	value, ok := c.Get(middleware.UserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
