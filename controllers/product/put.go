package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore-git/premium-store-api/catalog"
)

type UpdateProductInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" binding:"omitempty,gt=0"`
	OriginalPrice *float64 `json:"originalPrice"`
	Image         *string  `json:"image"`
	Category      *string  `json:"category"`
	Stock         *int     `json:"stock" binding:"omitempty,gte=0"`
}

// PUT /admin/products/:id
func UpdateProduct(cat *catalog.Catalog) gin.HandlerFunc {
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

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.OriginalPrice != nil {
			product.OriginalPrice = input.OriginalPrice
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}

		if err := cat.Upsert(c.Request.Context(), *product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
