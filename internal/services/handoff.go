package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nahidasmakeover/boutique/internal/api/middleware"
	"github.com/nahidasmakeover/boutique/internal/errors"
	"github.com/nahidasmakeover/boutique/internal/metrics"
	"github.com/nahidasmakeover/boutique/internal/models"
	repository "github.com/nahidasmakeover/boutique/internal/repositories"
	"github.com/nahidasmakeover/boutique/pkg/sendgrid"
	"github.com/nahidasmakeover/boutique/pkg/whatsapp"
)

type HandoffService interface {
	Checkout(ctx context.Context, sessionID uuid.UUID, req *models.CheckoutRequest) (*models.Handoff, error)
	BuyNow(ctx context.Context, productID string, req *models.BuyNowRequest) (*models.Handoff, error)
	Contact(ctx context.Context, req *models.ContactRequest) (*models.Handoff, error)
}

type handoffService struct {
	sessions    repository.SessionRepository
	catalog     CatalogService
	links       *whatsapp.LinkBuilder
	mailer      sendgrid.EmailService
	studioEmail string
}

// NewHandoffService builds the messaging handoffs. mailer may be nil, in
// which case contact messages are not copied to the studio inbox.
func NewHandoffService(
	sessions repository.SessionRepository,
	catalog CatalogService,
	links *whatsapp.LinkBuilder,
	mailer sendgrid.EmailService,
	studioEmail string,
) HandoffService {
	return &handoffService{
		sessions:    sessions,
		catalog:     catalog,
		links:       links,
		mailer:      mailer,
		studioEmail: studioEmail,
	}
}

// Checkout turns the bag into an order message and empties it. The bag is
// only cleared once the link exists.
func (s *handoffService) Checkout(ctx context.Context, sessionID uuid.UUID, req *models.CheckoutRequest) (*models.Handoff, error) {

	var handoff *models.Handoff

	_, err := s.sessions.Update(ctx, sessionID, func(session *models.Session) error {
		if session.Cart.Len() == 0 {
			return errors.EmptyCartError()
		}

		handoff = s.links.CartOrder(session.Cart.Items, session.Cart.Total(), req.Delivery)
		session.Cart.Clear()

		return nil
	})
	if err != nil {
		return nil, sessionError(err)
	}

	metrics.RecordHandoff(string(models.HandoffCart))

	return handoff, nil
}

func (s *handoffService) BuyNow(ctx context.Context, productID string, req *models.BuyNowRequest) (*models.Handoff, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	handoff := s.links.BuyNow(*product, *req)

	metrics.RecordHandoff(string(models.HandoffBuyNow))

	return handoff, nil
}

// Contact builds the contact handoff and, when mail is configured, copies the
// message to the studio. Mail failures do not fail the request.
func (s *handoffService) Contact(ctx context.Context, req *models.ContactRequest) (*models.Handoff, error) {

	logger := middleware.LoggerFromContext(ctx)

	handoff := s.links.Contact(*req)

	metrics.RecordHandoff(string(models.HandoffContact))

	if s.mailer == nil {
		return handoff, nil
	}

	msg := &models.EmailMessage{
		To:      s.studioEmail,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New inquiry from %s", req.FirstName),
		Content: handoff.Message,
	}

	if err := s.mailer.Send(context.WithoutCancel(ctx), msg); err != nil {
		logger.Error("Failed to email contact message to studio", slog.String("error", err.Error()))
	} else {
		logger.Info("Contact message emailed to studio")
	}

	return handoff, nil
}
