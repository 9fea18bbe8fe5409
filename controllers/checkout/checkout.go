package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/premstore-git/premium-store-api/checkout"
)

// GET /user/checkout
//
// Previews the order: recomputes the cart so a stale discount from an earlier
// session does not survive onto the summary, then returns the text and the
// contact channels without completing anything.
func GetCheckout(orch *checkout.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		currentCart, order, err := orch.Preview(c.Request.Context())
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare checkout"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"cart":     currentCart,
			"summary":  order.Summary,
			"contacts": contactsWithLinks(order),
		})
	}
}

// POST /user/checkout
func CompleteOrder(orch *checkout.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orch.CompleteOrder(c.Request.Context())
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete order"})
			return
		}

		broadcastOrder(order)

		c.JSON(http.StatusOK, gin.H{
			"summary":  order.Summary,
			"contacts": contactsWithLinks(order),
		})
	}
}

type contactView struct {
	checkout.ContactMethod
	MessageLink string `json:"messageLink"`
}

func contactsWithLinks(order checkout.Order) []contactView {
	views := make([]contactView, 0, len(order.Contacts))
	for _, m := range order.Contacts {
		views = append(views, contactView{
			ContactMethod: m,
			MessageLink:   m.MessageLink(order.Summary),
		})
	}
	return views
}
