package models

import "time"

// Default admin credentials carried over from the legacy storefront. Hard-coded
// credentials are a known security weakness of the original data set; deployments
// that care should rotate them immediately after first run.
const (
	AdminEmail    = "banducmanh2010@gmail.com"
	AdminPassword = "banducmanh1212010"
)

// DefaultAdmin returns the single seeded admin account. The discount fields are
// neutralized so the admin can never consume the new-user discount.
func DefaultAdmin() User {
	return User{
		ID:           "admin-001",
		Email:        AdminEmail,
		Password:     AdminPassword,
		Name:         "Admin",
		IsAdmin:      true,
		CreatedAt:    time.Now(),
		IsNewUser:    false,
		DiscountUsed: true,
	}
}

// SampleProducts returns the fixed seed catalog. Ids and prices are stable so
// carts and sessions saved against an older deployment keep resolving.
func SampleProducts() []Product {
	now := time.Now()
	return []Product{
		{
			ID:            "prod-001",
			Name:          "Netflix Premium 4K",
			Description:   "Tài khoản Netflix Premium 4K, xem được trên 4 thiết bị cùng lúc, hỗ trợ 4K HDR",
			Price:         99000,
			OriginalPrice: priceRef(260000),
			Image:         "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=500&auto=format&fit=crop&q=60",
			Category:      "Streaming",
			Stock:         50,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            "prod-002",
			Name:          "Spotify Premium",
			Description:   "Spotify Premium 1 tháng, nghe nhạc không quảng cáo, chất lượng cao",
			Price:         29000,
			OriginalPrice: priceRef(59000),
			Image:         "https://images.unsplash.com/photo-1614680376593-902f74cf0d41?w=500&auto=format&fit=crop&q=60",
			Category:      "Music",
			Stock:         100,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            "prod-003",
			Name:          "YouTube Premium",
			Description:   "YouTube Premium 1 tháng, xem video không quảng cáo, phát nền, tải video",
			Price:         39000,
			OriginalPrice: priceRef(79000),
			Image:         "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=500&auto=format&fit=crop&q=60",
			Category:      "Streaming",
			Stock:         80,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            "prod-004",
			Name:          "Disney+ Hotstar",
			Description:   "Disney+ Hotstar Premium, xem phim Marvel, Star Wars, Pixar, Disney",
			Price:         79000,
			OriginalPrice: priceRef(150000),
			Image:         "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=500&auto=format&fit=crop&q=60",
			Category:      "Streaming",
			Stock:         40,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            "prod-005",
			Name:          "Canva Pro",
			Description:   "Canva Pro 1 tháng, thiết kế đồ họa chuyên nghiệp với 100+ triệu template",
			Price:         49000,
			OriginalPrice: priceRef(99000),
			Image:         "https://images.unsplash.com/photo-1626785774573-4b799315345d?w=500&auto=format&fit=crop&q=60",
			Category:      "Design",
			Stock:         60,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            "prod-006",
			Name:          "Adobe Creative Cloud",
			Description:   "Adobe Creative Cloud All Apps, bộ 20+ ứng dụng sáng tạo chuyên nghiệp",
			Price:         199000,
			OriginalPrice: priceRef(550000),
			Image:         "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=500&auto=format&fit=crop&q=60",
			Category:      "Design",
			Stock:         30,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            "prod-007",
			Name:          "ChatGPT Plus",
			Description:   "ChatGPT Plus 1 tháng, truy cập GPT-4, tốc độ nhanh hơn, ưu tiên truy cập",
			Price:         490000,
			OriginalPrice: priceRef(600000),
			Image:         "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=500&auto=format&fit=crop&q=60",
			Category:      "AI Tools",
			Stock:         25,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            "prod-008",
			Name:          "Midjourney",
			Description:   "Midjourney Subscription, tạo hình ảnh AI chất lượng cao",
			Price:         290000,
			OriginalPrice: priceRef(400000),
			Image:         "https://images.unsplash.com/photo-1686191128892-3b37add4a934?w=500&auto=format&fit=crop&q=60",
			Category:      "AI Tools",
			Stock:         35,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

func priceRef(v float64) *float64 { return &v }
