package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore-git/premium-store-api/catalog"
)

// DELETE /admin/products/:id
func DeleteProduct(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Deleting an unknown id is a no-op, mirroring the storage contract.
		if err := cat.Delete(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
