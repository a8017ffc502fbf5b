package domain

import "time"

// Discount types for promo codes.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// PromoCode represents a discount code. CurrentUses only ever increases.
type PromoCode struct {
	ID            int        `json:"id"`
	Code          string     `json:"code"`
	Description   string     `json:"description"`
	DiscountType  string     `json:"discountType"`
	DiscountValue int64      `json:"discountValue"`
	MinimumAmount *int64     `json:"minimumAmount"`
	MaxUses       *int       `json:"maxUses"`
	CurrentUses   int        `json:"currentUses"`
	IsActive      bool       `json:"isActive"`
	ExpiresAt     *time.Time `json:"expiresAt"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// PromoCodePatch carries a partial promo code update. Nil fields keep
// the stored value; a CurrentUses value lower than the stored one is
// ignored to keep the counter monotonic.
type PromoCodePatch struct {
	Code          *string
	Description   *string
	DiscountType  *string
	DiscountValue *int64
	MinimumAmount *int64
	MaxUses       *int
	CurrentUses   *int
	IsActive      *bool
	ExpiresAt     *time.Time
}
