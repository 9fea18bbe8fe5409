package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/premstore-git/premium-store-api/account"
	"github.com/premstore-git/premium-store-api/cart"
	"github.com/premstore-git/premium-store-api/catalog"
	"github.com/premstore-git/premium-store-api/checkout"
	checkoutControllers "github.com/premstore-git/premium-store-api/controllers/checkout"
	productControllers "github.com/premstore-git/premium-store-api/controllers/product"
)

// Deps bundles the storefront components the handlers close over.
type Deps struct {
	Directory    *account.Directory
	Catalog      *catalog.Catalog
	Cart         *cart.Engine
	Orchestrator *checkout.Orchestrator
}

// SetupRoutes is the single entry point that wires up Auth, public, User, and
// Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Public product browsing
	r.GET("/products", productControllers.GetProducts(deps.Catalog))
	r.GET("/products/:id", productControllers.GetProductByID(deps.Catalog))

	// User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Admin routes (JWT + admin directory check)
	SetupAdminRoutes(r, deps)

	// Order handoff feed
	r.GET("/ws/orders", checkoutControllers.OrderFeedHandler)
}
