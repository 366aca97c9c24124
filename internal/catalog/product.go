package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyID       = errors.New("product id cannot be empty")
	ErrEmptyName     = errors.New("product name cannot be empty")
	ErrNegativePrice = errors.New("product price cannot be negative")
	ErrRatingRange   = errors.New("product rating must be between 0 and 5")
)

// Product is a single catalog entry. Price is in whole rupiah, no minor
// units.
type Product struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Price    int64   `yaml:"price"`
	Image    string  `yaml:"image,omitempty"`
	Category string  `yaml:"category,omitempty"`
	Artisan  string  `yaml:"artisan,omitempty"`
	Rating   float64 `yaml:"rating,omitempty"`
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product %q", ErrEmptyName, p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: product %q has price %d", ErrNegativePrice, p.ID, p.Price)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w: product %q has rating %g", ErrRatingRange, p.ID, p.Rating)
	}
	return nil
}

// Fixtures is the built-in shop inventory, used whenever no catalog file
// overrides it.
func Fixtures() []Product {
	return []Product{
		{
			ID:       "bag-1",
			Name:     "Tas Anyam Premium",
			Price:    150000,
			Image:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=300&h=300&fit=crop",
			Category: "bags",
			Artisan:  "Ibu Sari - Yogyakarta",
			Rating:   4.8,
		},
		{
			ID:       "hat-1",
			Name:     "Topi Anyam Tradisional",
			Price:    75000,
			Image:    "https://images.unsplash.com/photo-1529958030586-3aae4ca485ff?w=300&h=300&fit=crop",
			Category: "hats",
			Artisan:  "Pak Budi - Jawa Tengah",
			Rating:   4.9,
		},
		{
			ID:       "basket-1",
			Name:     "Keranjang Serbaguna",
			Price:    120000,
			Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=300&fit=crop",
			Category: "baskets",
			Artisan:  "Ibu Tini - Kalimantan",
			Rating:   4.7,
		},
		{
			ID:       "decor-1",
			Name:     "Vas Dekorasi Modern",
			Price:    200000,
			Image:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=300&h=300&fit=crop",
			Category: "decor",
			Artisan:  "Ibu Maya - Bali",
			Rating:   4.8,
		},
	}
}
