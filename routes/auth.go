package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/premstore-git/premium-store-api/controllers/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(deps.Directory)) // POST /auth/register
		authGroup.POST("/login", authControllers.Login(deps.Directory))       // POST /auth/login
		authGroup.POST("/logout", authControllers.Logout(deps.Directory))     // POST /auth/logout
	}
}
