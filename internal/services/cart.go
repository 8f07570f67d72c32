package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nahidasmakeover/boutique/internal/models"
	repository "github.com/nahidasmakeover/boutique/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID uuid.UUID) (*models.CartResponse, error)
	AddItem(ctx context.Context, sessionID uuid.UUID, req *models.AddCartItemRequest) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, index int) (*models.CartResponse, error)
}

type cartService struct {
	sessions repository.SessionRepository
	catalog  CatalogService
}

func NewCartService(sessions repository.SessionRepository, catalog CatalogService) CartService {
	return &cartService{sessions: sessions, catalog: catalog}
}

func (s *cartService) GetCart(ctx context.Context, sessionID uuid.UUID) (*models.CartResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, sessionError(err)
	}

	return models.NewCartResponse(session.Cart), nil
}

// AddItem appends the catalog copy of the product. Adding the same product
// twice yields two entries.
func (s *cartService) AddItem(ctx context.Context, sessionID uuid.UUID, req *models.AddCartItemRequest) (*models.CartResponse, error) {
	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Update(ctx, sessionID, func(session *models.Session) error {
		session.Cart.Add(*product)
		return nil
	})
	if err != nil {
		return nil, sessionError(err)
	}

	return models.NewCartResponse(session.Cart), nil
}

// RemoveItem drops the entry at index. An index past the end leaves the cart as is.
func (s *cartService) RemoveItem(ctx context.Context, sessionID uuid.UUID, index int) (*models.CartResponse, error) {
	session, err := s.sessions.Update(ctx, sessionID, func(session *models.Session) error {
		session.Cart.RemoveAt(index)
		return nil
	})
	if err != nil {
		return nil, sessionError(err)
	}

	return models.NewCartResponse(session.Cart), nil
}
