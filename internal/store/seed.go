package store

import (
	"context"
	"fmt"

	"trynex-storefront/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the cost factor used for the seeded admin password hash.
const bcryptCost = 10

// SeedAdmin holds the credentials for the single seeded admin record.
// The password is hashed before storage; the plaintext is discarded.
type SeedAdmin struct {
	Email    string
	Password string
	Name     string
}

func i64(v int64) *int64 { return &v }

// Seed loads the initial catalog, site content, and admin record into an
// empty store. Product ids are assigned in declaration order, 1 through 10.
func (s *Store) Seed(ctx context.Context, admin SeedAdmin) error {
	for _, p := range seedProducts() {
		if _, err := s.Products.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}

	for _, c := range seedContent() {
		if _, err := s.Content.Upsert(ctx, c.Key, c.Value); err != nil {
			return fmt.Errorf("failed to seed site content %q: %w", c.Key, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	_, err = s.Admins.Create(ctx, &domain.Admin{
		Email:        admin.Email,
		PasswordHash: string(hash),
		Name:         admin.Name,
		Role:         "admin",
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	return nil
}

func seedContent() []domain.SiteContent {
	return []domain.SiteContent{
		{Key: "site_title", Value: "TryNex Lifestyle"},
		{Key: "hero_title", Value: "Premium Gifts & Lifestyle Products"},
		{Key: "hero_subtitle", Value: "Personalized T-shirts, Mugs, Photo Frames & More | গুণমান ও সাশ্রয়ী দামে"},
		{Key: "footer_text", Value: "Premium gifts and lifestyle products with personalization services in Bangladesh."},
	}
}

func seedProducts() []*domain.Product {
	return []*domain.Product{
		{
			Name:        "Basic Cotton T-Shirt",
			Description: "100% cotton, comfortable fit, customizable design",
			Price:       40000,
			Category:    "t-shirts",
			Images:      []string{"https://images.unsplash.com/photo-1576566588028-4147f3842f27?ixlib=rb-4.0.3"},
			Variants: &domain.ProductVariants{
				Sizes:  []string{"S", "M", "L", "XL", "XXL"},
				Colors: []string{"Black", "White", "Blue", "Red"},
			},
			InStock: 50,
		},
		{
			Name:          "Premium Cotton T-Shirt",
			Description:   "High-grade cotton, custom prints, premium quality",
			Price:         55000,
			OriginalPrice: i64(65000),
			Category:      "t-shirts",
			Images:        []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?ixlib=rb-4.0.3"},
			Variants: &domain.ProductVariants{
				Sizes:  []string{"S", "M", "L", "XL", "XXL"},
				Colors: []string{"Black", "White", "Blue", "Red", "Gray"},
			},
			InStock:  30,
			Featured: true,
		},
		{
			Name:        "Premium Drop Shoulder T-Shirt",
			Description: "Trendy drop shoulder design, premium cotton",
			Price:       60000,
			Category:    "t-shirts",
			Images:      []string{"https://images.unsplash.com/photo-1562157873-818bc0726f68?ixlib=rb-4.0.3"},
			Variants: &domain.ProductVariants{
				Sizes:  []string{"S", "M", "L", "XL"},
				Colors: []string{"Black", "White", "Gray"},
			},
			InStock:  25,
			Featured: true,
		},
		{
			Name:        "Regular Ceramic Mug",
			Description: "11oz ceramic mug, perfect for daily use",
			Price:       65000,
			Category:    "mugs",
			Images:      []string{"https://pixabay.com/get/g2917ea8ef19354339ece6a4f0a61d517800f31959f10aa3d44a83cade2c35460c616e098cd24254ae46b2b86dbcd1b59496fa4c33543b6f42872b3b4c0757e1a_1280.jpg"},
			Variants: &domain.ProductVariants{
				Colors: []string{"White", "Black", "Blue"},
			},
			InStock: 40,
		},
		{
			Name:        "Love Shape Mug",
			Description: "Heart-shaped ceramic mug, perfect for couples",
			Price:       68000,
			Category:    "mugs",
			Images:      []string{"https://pixabay.com/get/g30b8ba8e9133e3812ca39b37747aa7503c765007a073bcb80dca6761689bd3886ba0d77f6431fe795cda71b605dfe1d25496ebf2bdfd1c66c1d442d4effd8bc1_1280.jpg"},
			Variants: &domain.ProductVariants{
				Colors: []string{"Red", "Pink", "White"},
			},
			InStock:  20,
			Featured: true,
		},
		{
			Name:        "Magic Color-Change Mug",
			Description: "Changes color with hot beverages, 11oz ceramic",
			Price:       75000,
			Category:    "mugs",
			Images:      []string{"https://images.unsplash.com/photo-1544787219-7f47ccb76574?ixlib=rb-4.0.3"},
			Variants: &domain.ProductVariants{
				Colors: []string{"Black to Color", "Blue to White"},
			},
			InStock:  15,
			Featured: true,
		},
		{
			Name:        "2-Piece Mug Set with Box",
			Description: "Two premium mugs with luxury gift packaging",
			Price:       120000,
			Category:    "mugs",
			Images:      []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3"},
			Variants: &domain.ProductVariants{
				Options: []string{"Couple Set", "Family Set"},
			},
			InStock:  10,
			Featured: true,
		},
		{
			Name:        "Custom Picture Frame (No Box)",
			Description: "Wooden frame with custom design, no packaging",
			Price:       110000,
			Category:    "picture-frames",
			Images:      []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3"},
			Variants: &domain.ProductVariants{
				Sizes: []string{"4x6", "5x7", "8x10"},
			},
			InStock: 35,
		},
		{
			Name:        "Custom Picture Frame with Premium Box",
			Description: "Wooden frame with custom design and luxury packaging",
			Price:       130000,
			Category:    "picture-frames",
			Images:      []string{"https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?ixlib=rb-4.0.3"},
			Variants: &domain.ProductVariants{
				Sizes: []string{"4x6", "5x7", "8x10"},
			},
			InStock:  25,
			Featured: true,
		},
		{
			Name:        "Custom Water Tumbler",
			Description: "Stainless steel tumbler, customizable design",
			Price:       78000,
			Category:    "water-tumblers",
			Images:      []string{"https://pixabay.com/get/ga52b1b0ca946643b2e8e308d521d8738a8e5d8abdadc73cd26c1d5d4c8c6c3b0baf14a124c23bf81124f06ec65160d3bf27d76ed8bc07919b7547a8a3e04e055_1280.jpg"},
			Variants: &domain.ProductVariants{
				Colors: []string{"Silver", "Black", "Blue", "Red"},
				Sizes:  []string{"16oz", "20oz"},
			},
			InStock:  30,
			Featured: true,
		},
	}
}
