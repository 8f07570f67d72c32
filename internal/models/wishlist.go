package models

// Wishlist holds at most one entry per product id.
type Wishlist struct {
	Items []Product `json:"items"`
}

// Toggle removes the product if present, otherwise appends it. It reports
// whether the product is in the wishlist afterwards.
func (w *Wishlist) Toggle(product Product) bool {
	for i, item := range w.Items {
		if item.ID == product.ID {
			w.Items = append(w.Items[:i:i], w.Items[i+1:]...)
			return false
		}
	}

	w.Items = append(w.Items, product)

	return true
}

func (w *Wishlist) Contains(productID string) bool {
	for _, item := range w.Items {
		if item.ID == productID {
			return true
		}
	}

	return false
}

type ToggleWishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type WishlistResponse struct {
	Items []Product `json:"items"`
	Count int       `json:"count"`
}

type WishlistToggleResponse struct {
	ProductID string `json:"productId"`
	Saved     bool   `json:"saved"`
	Count     int    `json:"count"`
}

type WishlistContainsResponse struct {
	ProductID string `json:"productId"`
	Contains  bool   `json:"contains"`
}
