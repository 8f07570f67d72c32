package repository

import "github.com/nahidasmakeover/boutique/internal/models"

// DefaultCatalog returns the boutique's fixed product table. Every call
// returns fresh slices, and reviews start empty.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Goddess Silk Foundation",
			Category:    models.CategoryFace,
			Price:       52,
			Description: "Experience a second-skin finish with our signature Goddess Silk. Designed for a 24-hour weightless glow.",
			Image:       "https://images.unsplash.com/photo-1631730359585-38a4935ccbb2?q=80&w=800&auto=format&fit=crop",
			Rating:      5.0,
			Reviews:     []models.Review{},
		},
		{
			ID:          "2",
			Name:        "Nahida Bloom Lipstick",
			Category:    models.CategoryLips,
			Price:       38,
			Description: "A creamy, petal-soft matte that hydrates while delivering intense, high-fashion pigment.",
			Image:       "https://images.unsplash.com/photo-1586776977607-310e9c725c37?q=80&w=800&auto=format&fit=crop",
			Rating:      4.9,
			Reviews:     []models.Review{},
		},
		{
			ID:          "3",
			Name:        "Ethereal Rose Palette",
			Category:    models.CategoryEyes,
			Price:       65,
			Description: "14 dreamy shades of rose gold, mauve, and champagne. The ultimate palette for every romantic look.",
			Image:       "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?q=80&w=800&auto=format&fit=crop",
			Rating:      5.0,
			Reviews:     []models.Review{},
		},
		{
			ID:          "4",
			Name:        "Aura Radiance Serum",
			Category:    models.CategorySkincare,
			Price:       78,
			Description: "Infused with 24k gold flakes and rosehip oil to prep your skin for the perfect makeover.",
			Image:       "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?q=80&w=800&auto=format&fit=crop",
			Rating:      4.8,
			Reviews:     []models.Review{},
		},
		{
			ID:          "5",
			Name:        "Dream Lash Mascara",
			Category:    models.CategoryEyes,
			Price:       34,
			Description: "Achieve fluttery, doll-like lashes without clumping. Sweat-proof for long studio days.",
			Image:       "https://images.unsplash.com/photo-1631214503951-3751033d2544?q=80&w=800&auto=format&fit=crop",
			Rating:      4.9,
			Reviews:     []models.Review{},
		},
		{
			ID:          "6",
			Name:        "Angelic Glow Blush",
			Category:    models.CategoryFace,
			Price:       42,
			Description: "A soft-focus, radiant blush that mimics a natural, youthful flush.",
			Image:       "https://images.unsplash.com/photo-1596462502278-27bfac44221d?q=80&w=800&auto=format&fit=crop",
			Rating:      4.7,
			Reviews:     []models.Review{},
		},
	}
}
