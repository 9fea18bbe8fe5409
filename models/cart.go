package models

// CartItem holds a snapshot of the product at the time it was added, not a
// reference into the catalog. Quantity is always >= 1; a quantity update that
// would drop to zero removes the item instead.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart carries its derived totals alongside the items so that any persisted
// cart is self-describing. Total, Discount and FinalTotal must be recomputed
// together whenever Items changes.
type Cart struct {
	Items      []CartItem `json:"items"`
	Total      float64    `json:"total"`
	Discount   float64    `json:"discount"`
	FinalTotal float64    `json:"finalTotal"`
}

// EmptyCart is the canonical zero-value cart persisted on clear and logout.
func EmptyCart() Cart {
	return Cart{Items: []CartItem{}}
}
