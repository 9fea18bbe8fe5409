package models

import "time"

// Product is a sellable premium-account listing. OriginalPrice, when set, is
// the pre-discount reference price shown struck through in listings; cart math
// only ever uses Price. Stock is advisory and never decremented on purchase.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Image         string    `json:"image"`
	Category      string    `json:"category"`
	Stock         int       `json:"stock"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
