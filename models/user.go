package models

import "time"

// User is a registered storefront account. Passwords are stored and compared
// in plaintext, matching the legacy storefront data — a known weakness that
// callers must not mistake for real credential handling.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`

	// IsNewUser and DiscountUsed jointly gate the one-time 30% discount.
	IsNewUser    bool `json:"isNewUser"`
	DiscountUsed bool `json:"discountUsed"`
}

// DiscountEligible reports whether the one-time new-user discount still
// applies to this account.
func (u User) DiscountEligible() bool {
	return u.IsNewUser && !u.DiscountUsed
}
