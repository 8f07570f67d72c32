package models

// Cart is an ordered multiset of products. The same product may appear in
// several entries; entries are addressed by position.
type Cart struct {
	Items []Product `json:"items"`
}

func (c *Cart) Add(product Product) {
	c.Items = append(c.Items, product)
}

// RemoveAt drops the entry at index. Out-of-range indexes are ignored.
func (c *Cart) RemoveAt(index int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}

	items := make([]Product, 0, len(c.Items)-1)
	items = append(items, c.Items[:index]...)
	items = append(items, c.Items[index+1:]...)
	c.Items = items

	return true
}

func (c *Cart) Total() float64 {
	var total float64

	for _, item := range c.Items {
		total += item.Price
	}

	return total
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Len() int {
	return len(c.Items)
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type CartEntry struct {
	Index   int     `json:"index"`
	Product Product `json:"product"`
}

type CartResponse struct {
	Items []CartEntry `json:"items"`
	Count int         `json:"count"`
	Total float64     `json:"total"`
}

func NewCartResponse(c Cart) *CartResponse {
	entries := make([]CartEntry, 0, len(c.Items))
	for i, p := range c.Items {
		entries = append(entries, CartEntry{Index: i, Product: p})
	}

	return &CartResponse{Items: entries, Count: len(entries), Total: c.Total()}
}
