package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore-git/premium-store-api/account"
)

// RequireAdmin gates the admin surface. The token's role claim is not trusted
// on its own: the directory user behind user_id must still carry isAdmin, so
// a demoted account is locked out even with an unexpired admin token. Anyone
// failing the check is turned away before any management data is produced.
func RequireAdmin(dir *account.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		userIDVal, exists := c.Get("user_id")
		userID, _ := userIDVal.(string)
		if !exists || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		users, err := dir.Users(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify admin"})
			c.Abort()
			return
		}
		for _, u := range users {
			if u.ID == userID && u.IsAdmin {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
	}
}
