package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore-git/premium-store-api/account"
	authControllers "github.com/premstore-git/premium-store-api/controllers/auth"
)

// GET /admin/users
func GetAllUsers(dir *account.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := dir.Users(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		views := make([]authControllers.UserView, 0, len(users))
		for _, u := range users {
			views = append(views, authControllers.PublicUser(u))
		}
		c.JSON(http.StatusOK, views)
	}
}
