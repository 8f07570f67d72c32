package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nahidasmakeover/boutique/internal/models"
	repository "github.com/nahidasmakeover/boutique/internal/repositories"
)

type WishlistService interface {
	GetWishlist(ctx context.Context, sessionID uuid.UUID) (*models.WishlistResponse, error)
	Toggle(ctx context.Context, sessionID uuid.UUID, req *models.ToggleWishlistRequest) (*models.WishlistToggleResponse, error)
	Contains(ctx context.Context, sessionID uuid.UUID, productID string) (*models.WishlistContainsResponse, error)
}

type wishlistService struct {
	sessions repository.SessionRepository
	catalog  CatalogService
}

func NewWishlistService(sessions repository.SessionRepository, catalog CatalogService) WishlistService {
	return &wishlistService{sessions: sessions, catalog: catalog}
}

func (s *wishlistService) GetWishlist(ctx context.Context, sessionID uuid.UUID) (*models.WishlistResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, sessionError(err)
	}

	return newWishlistResponse(session.Wishlist), nil
}

func (s *wishlistService) Toggle(ctx context.Context, sessionID uuid.UUID, req *models.ToggleWishlistRequest) (*models.WishlistToggleResponse, error) {
	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	var saved bool

	session, err := s.sessions.Update(ctx, sessionID, func(session *models.Session) error {
		saved = session.Wishlist.Toggle(*product)
		return nil
	})
	if err != nil {
		return nil, sessionError(err)
	}

	return &models.WishlistToggleResponse{
		ProductID: product.ID,
		Saved:     saved,
		Count:     len(session.Wishlist.Items),
	}, nil
}

func (s *wishlistService) Contains(ctx context.Context, sessionID uuid.UUID, productID string) (*models.WishlistContainsResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, sessionError(err)
	}

	return &models.WishlistContainsResponse{
		ProductID: productID,
		Contains:  session.Wishlist.Contains(productID),
	}, nil
}

func newWishlistResponse(w models.Wishlist) *models.WishlistResponse {
	items := w.Items
	if items == nil {
		items = []models.Product{}
	}

	return &models.WishlistResponse{Items: items, Count: len(items)}
}
