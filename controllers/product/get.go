package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore-git/premium-store-api/catalog"
)

// GET /products
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := cat.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := cat.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
