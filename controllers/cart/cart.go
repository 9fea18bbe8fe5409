package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore-git/premium-store-api/cart"
	"github.com/premstore-git/premium-store-api/catalog"
)

type AddToCartInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

// GET /user/cart
func GetCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, err := engine.Get(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, current)
	}
}

// POST /user/cart
func AddToCart(engine *cart.Engine, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := cat.Get(c.Request.Context(), input.ProductID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}
		if product == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		current, err := engine.AddItem(c.Request.Context(), *product)
		if err != nil {
			if errors.Is(err, cart.ErrAlreadyInCart) {
				c.JSON(http.StatusConflict, gin.H{"error": "Product already in cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, current)
	}
}

// PUT /user/cart/:product_id
func SetCartQuantity(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Zero and negative quantities remove the line item.
		current, err := engine.SetQuantity(c.Request.Context(), c.Param("product_id"), input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, current)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, err := engine.RemoveItem(c.Request.Context(), c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, current)
	}
}

// DELETE /user/cart
func ClearCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := engine.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// POST /user/cart/refresh
//
// Recomputes the totals against the current session user. The storefront
// calls this before showing checkout, where discount eligibility may have
// changed without a cart mutation.
func RefreshCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, err := engine.Refresh(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh cart"})
			return
		}
		c.JSON(http.StatusOK, current)
	}
}
