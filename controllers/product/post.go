package productControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/premstore-git/premium-store-api/catalog"
	"github.com/premstore-git/premium-store-api/models"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"originalPrice"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Stock         *int     `json:"stock" binding:"omitempty,gte=0"`
}

// POST /admin/products
func CreateProduct(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		stock := 0
		if input.Stock != nil {
			stock = *input.Stock
		}
		now := time.Now()
		product := models.Product{
			ID:            "prod-" + uuid.NewString(),
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			Image:         input.Image,
			Category:      input.Category,
			Stock:         stock,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := cat.Upsert(c.Request.Context(), product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
