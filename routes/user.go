package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/premstore-git/premium-store-api/controllers/cart"
	checkoutControllers "github.com/premstore-git/premium-store-api/controllers/checkout"
	"github.com/premstore-git/premium-store-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(deps.Cart))                        // GET /user/cart
			cartGroup.POST("", cartControllers.AddToCart(deps.Cart, deps.Catalog))       // POST /user/cart
			cartGroup.POST("/refresh", cartControllers.RefreshCart(deps.Cart))           // POST /user/cart/refresh
			cartGroup.PUT("/:product_id", cartControllers.SetCartQuantity(deps.Cart))    // PUT /user/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Cart))  // DELETE /user/cart/:product_id
			cartGroup.DELETE("", cartControllers.ClearCart(deps.Cart))                   // DELETE /user/cart
		}

		// ──────────────── Checkout ────────────────
		userGroup.GET("/checkout", checkoutControllers.GetCheckout(deps.Orchestrator))    // GET /user/checkout
		userGroup.POST("/checkout", checkoutControllers.CompleteOrder(deps.Orchestrator)) // POST /user/checkout
	}
}
