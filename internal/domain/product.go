package domain

import "time"

// ProductVariants groups the selectable variant lists for a product.
// Each list is ordered; absent lists mean the product has no such variant.
type ProductVariants struct {
	Sizes   []string `json:"sizes,omitempty"`
	Colors  []string `json:"colors,omitempty"`
	Options []string `json:"options,omitempty"`
}

// Product represents a catalog product. Money fields are integer
// minor currency units (40000 = ৳400.00), never fractional.
type Product struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         int64            `json:"price"`
	OriginalPrice *int64           `json:"originalPrice"`
	Category      string           `json:"category"`
	Images        []string         `json:"images"`
	Variants      *ProductVariants `json:"variants"`
	InStock       int              `json:"inStock"`
	Featured      bool             `json:"featured"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// ProductPatch carries a partial product update. Nil fields keep the
// stored value; slices and variants replace wholesale when set.
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *int64
	OriginalPrice *int64
	Category      *string
	Images        []string
	Variants      *ProductVariants
	InStock       *int
	Featured      *bool
}
