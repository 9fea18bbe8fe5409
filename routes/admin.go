package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/premstore-git/premium-store-api/controllers/admin"
	productControllers "github.com/premstore-git/premium-store-api/controllers/product"
	"github.com/premstore-git/premium-store-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an
// authenticated session whose directory user is an admin.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(deps.Directory))
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", adminControllers.GetAllUsers(deps.Directory))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(deps.Catalog))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(deps.Catalog))
			productAdmin.GET("", productControllers.GetProducts(deps.Catalog))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(deps.Catalog))
			productAdmin.POST("/import-excel", productControllers.ImportProductsFromExcel(deps.Catalog))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(deps.Catalog))
		}
	}
}
