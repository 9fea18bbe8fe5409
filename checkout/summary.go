package checkout

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/premstore-git/premium-store-api/models"
)

// ContactMethod is one of the fixed external messaging channels an order is
// handed off to. There is no payment processor; the buyer finishes the
// purchase by messaging the seller.
type ContactMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// ContactMethods returns the seller's contact channels in display order.
func ContactMethods() []ContactMethod {
	return []ContactMethod{
		{
			ID:          "facebook",
			Name:        "Facebook",
			Username:    "@ducmanh1212010",
			Link:        "https://facebook.com/ducmanh1212010",
			Description: "Nhắn tin qua Facebook Messenger",
		},
		{
			ID:          "tiktok",
			Name:        "TikTok",
			Username:    "@dk_m.1109",
			Link:        "https://tiktok.com/@dk_m.1109",
			Description: "Nhắn tin qua TikTok",
		},
		{
			ID:          "zalo",
			Name:        "Zalo",
			Username:    "0342370478",
			Link:        "https://zalo.me/0342370478",
			Description: "Nhắn tin qua Zalo",
		},
	}
}

// MessageLink returns the URL that opens this channel with the order message
// prefilled, where the channel supports it.
func (m ContactMethod) MessageLink(message string) string {
	switch m.ID {
	case "facebook":
		return "https://m.me/ducmanh1212010?text=" + url.QueryEscape(message)
	default:
		return m.Link
	}
}

// OrderMessage renders the human-readable order summary handed off to the
// seller. Downstream contacts read this text by eye, but the line layout is
// stable: item lines, subtotal, discount when non-zero, final total, then
// customer name and email.
func OrderMessage(cart models.Cart, user *models.User) string {
	var lines []string
	for _, item := range cart.Items {
		lines = append(lines, fmt.Sprintf("- %s x%d: %s",
			item.Product.Name, item.Quantity, FormatVND(item.Product.Price*float64(item.Quantity))))
	}

	name, email := "Khách", "N/A"
	if user != nil {
		name, email = user.Name, user.Email
	}

	var b strings.Builder
	b.WriteString("Xin chào! Tôi muốn đặt hàng:\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nTạm tính: " + FormatVND(cart.Total) + "\n")
	if cart.Discount > 0 {
		b.WriteString("Giảm giá: -" + FormatVND(cart.Discount) + "\n")
	}
	b.WriteString("Tổng cộng: " + FormatVND(cart.FinalTotal) + "\n\n")
	b.WriteString("Thông tin khách hàng:\n")
	b.WriteString("Tên: " + name + "\n")
	b.WriteString("Email: " + email)
	return b.String()
}

// FormatVND renders an amount the way the storefront always has: vi-VN
// grouping with dots and the đồng sign, no fractional digits.
func FormatVND(amount float64) string {
	// Round half away from zero, as Intl.NumberFormat does; truncation would
	// push negative amounts one đồng toward zero.
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return sign + strings.Join(groups, ".") + " ₫"
}
