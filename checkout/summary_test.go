package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/premstore-git/premium-store-api/models"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0 ₫", FormatVND(0))
	assert.Equal(t, "500 ₫", FormatVND(500))
	assert.Equal(t, "99.000 ₫", FormatVND(99000))
	assert.Equal(t, "29.700 ₫", FormatVND(29700))
	assert.Equal(t, "1.234.567 ₫", FormatVND(1234567))
	assert.Equal(t, "-29.700 ₫", FormatVND(-29700))
	// Fractional amounts round half away from zero in both directions.
	assert.Equal(t, "30 ₫", FormatVND(29.7))
	assert.Equal(t, "-30 ₫", FormatVND(-29.7))
	assert.Equal(t, "-1.000 ₫", FormatVND(-999.5))
}

func TestOrderMessageLayout(t *testing.T) {
	cart := models.Cart{
		Items: []models.CartItem{
			{Product: models.Product{ID: "prod-001", Name: "Netflix Premium 4K", Price: 99000}, Quantity: 1},
			{Product: models.Product{ID: "prod-002", Name: "Spotify Premium", Price: 29000}, Quantity: 2},
		},
		Total:      157000,
		Discount:   47100,
		FinalTotal: 109900,
	}
	user := &models.User{Name: "Nguyễn Văn A", Email: "a@b.c"}

	msg := OrderMessage(cart, user)
	want := "Xin chào! Tôi muốn đặt hàng:\n\n" +
		"- Netflix Premium 4K x1: 99.000 ₫\n" +
		"- Spotify Premium x2: 58.000 ₫\n\n" +
		"Tạm tính: 157.000 ₫\n" +
		"Giảm giá: -47.100 ₫\n" +
		"Tổng cộng: 109.900 ₫\n\n" +
		"Thông tin khách hàng:\n" +
		"Tên: Nguyễn Văn A\n" +
		"Email: a@b.c"
	assert.Equal(t, want, msg)
}

func TestOrderMessageWithoutSessionOrDiscount(t *testing.T) {
	cart := models.Cart{
		Items:      []models.CartItem{{Product: models.Product{Name: "Canva Pro", Price: 49000}, Quantity: 1}},
		Total:      49000,
		FinalTotal: 49000,
	}

	msg := OrderMessage(cart, nil)
	assert.NotContains(t, msg, "Giảm giá")
	assert.Contains(t, msg, "Tên: Khách")
	assert.Contains(t, msg, "Email: N/A")
}

func TestContactMessageLinks(t *testing.T) {
	methods := ContactMethods()
	assert.Len(t, methods, 3)

	var facebook, zalo ContactMethod
	for _, m := range methods {
		switch m.ID {
		case "facebook":
			facebook = m
		case "zalo":
			zalo = m
		}
	}

	link := facebook.MessageLink("hello world")
	assert.Equal(t, "https://m.me/ducmanh1212010?text=hello+world", link)

	// Channels without prefill support fall back to the plain profile link.
	assert.Equal(t, "https://zalo.me/0342370478", zalo.MessageLink("hello"))
}
