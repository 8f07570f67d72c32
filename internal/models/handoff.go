package models

type HandoffKind string

const (
	HandoffCart    HandoffKind = "cart"
	HandoffBuyNow  HandoffKind = "buy_now"
	HandoffContact HandoffKind = "contact"
)

type DeliveryDetails struct {
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"required,max=30"`
	Address string `json:"address" validate:"required,max=300"`
}

type CheckoutRequest struct {
	Delivery *DeliveryDetails `json:"delivery,omitempty" validate:"omitempty"`
}

type BuyNowRequest struct {
	DeliveryDetails
	Shade string `json:"shade,omitempty" validate:"omitempty,max=60"`
}

type ContactRequest struct {
	FirstName string `json:"firstName" validate:"required,max=80"`
	Email     string `json:"email" validate:"required,email"`
	Message   string `json:"message" validate:"required,max=4000"`
}

// Handoff is an outbound message ready to be opened in the messaging app.
type Handoff struct {
	Kind    HandoffKind `json:"kind"`
	Message string      `json:"message"`
	URL     string      `json:"url"`
}
