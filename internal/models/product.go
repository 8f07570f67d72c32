package models

type Category string

const (
	CategoryLips     Category = "Lips"
	CategoryEyes     Category = "Eyes"
	CategoryFace     Category = "Face"
	CategorySkincare Category = "Skincare"
	CategoryHair     Category = "Hair"
)

// ReviewDateLayout is the calendar-date format reviews are stamped and persisted with.
const ReviewDateLayout = "2006-01-02"

type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Reviews     []Review `json:"reviews"`
}

// Clone returns a copy whose review list does not alias the receiver's.
func (p Product) Clone() Product {
	reviews := make([]Review, len(p.Reviews))
	copy(reviews, p.Reviews)
	p.Reviews = reviews

	return p
}

// ReviewOverlay maps a product id to its submitted reviews, newest first.
type ReviewOverlay map[string][]Review

type CreateReviewRequest struct {
	UserName string `json:"userName" validate:"required,max=80"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required,max=2000"`
}

type ProductListResponse struct {
	SearchTerm string    `json:"searchTerm,omitempty"`
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
}
