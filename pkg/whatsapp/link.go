// Package whatsapp formats order and contact messages as WhatsApp deep links.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nahidasmakeover/boutique/internal/models"
)

const DefaultShade = "Standard Selection"

type LinkBuilder struct {
	baseURL  string
	currency string
}

func NewLinkBuilder(baseURL, currency string) *LinkBuilder {
	return &LinkBuilder{baseURL: baseURL, currency: currency}
}

// Link appends message to the base URL as the text parameter.
func (b *LinkBuilder) Link(message string) string {
	sep := "?"
	if strings.Contains(b.baseURL, "?") {
		sep = "&"
	}

	return b.baseURL + sep + "text=" + Escape(message)
}

// Escape percent-encodes s for a query value, spaces as %20.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func (b *LinkBuilder) price(amount float64) string {
	return fmt.Sprintf("%s%.2f", b.currency, amount)
}

func (b *LinkBuilder) handoff(kind models.HandoffKind, message string) *models.Handoff {
	return &models.Handoff{Kind: kind, Message: message, URL: b.Link(message)}
}

// CartOrder lists every bag entry with the total. Delivery details are optional.
func (b *LinkBuilder) CartOrder(items []models.Product, total float64, delivery *models.DeliveryDetails) *models.Handoff {
	var sb strings.Builder

	sb.WriteString("✨ New Order Inquiry for Nahida's Makeover ✨\n\n")
	sb.WriteString("🛍️ MY BAG:\n")

	for _, item := range items {
		fmt.Fprintf(&sb, "- %s (%s)\n", item.Name, b.price(item.Price))
	}

	fmt.Fprintf(&sb, "\nTotal: %s\n\n", b.price(total))

	if delivery != nil {
		sb.WriteString("🌸 DELIVERY DETAILS:\n")
		fmt.Fprintf(&sb, "Name: %s\nPhone: %s\nAddress: %s\n\n", delivery.Name, delivery.Phone, delivery.Address)
	}

	sb.WriteString("Please confirm availability and payment details!")

	return b.handoff(models.HandoffCart, sb.String())
}

func (b *LinkBuilder) BuyNow(product models.Product, req models.BuyNowRequest) *models.Handoff {
	shade := strings.TrimSpace(req.Shade)
	if shade == "" {
		shade = DefaultShade
	}

	message := fmt.Sprintf(`✨ New Order for Nahida's Makeover ✨

💖 PRODUCT DETAILS:
Product: %s
Category: %s
Price: %s
Selected Variant: %s

🌸 CUSTOMER INFORMATION:
Name: %s
Phone: %s
Address: %s

Please confirm my order and let me know the payment details!`,
		product.Name, product.Category, b.price(product.Price), shade,
		req.Name, req.Phone, req.Address)

	return b.handoff(models.HandoffBuyNow, message)
}

func (b *LinkBuilder) Contact(req models.ContactRequest) *models.Handoff {
	message := fmt.Sprintf("✨ New Inquiry from Nahida's Makeover ✨\n\n👤 Name: %s\n📧 Email: %s\n\n📝 Message:\n%s\n\nPlease get back to me soon!",
		req.FirstName, req.Email, req.Message)

	return b.handoff(models.HandoffContact, message)
}
