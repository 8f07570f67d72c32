package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nahidasmakeover/boutique/internal/errors"
	"github.com/nahidasmakeover/boutique/internal/models"
	repository "github.com/nahidasmakeover/boutique/internal/repositories"
)

type NavigationService interface {
	Current(ctx context.Context, sessionID uuid.UUID) (*models.NavigationResponse, error)
	Navigate(ctx context.Context, sessionID uuid.UUID, req *models.NavigateRequest) (*models.NavigationResponse, error)
}

type navigationService struct {
	sessions repository.SessionRepository
	catalog  CatalogService
	studio   StudioService
}

func NewNavigationService(sessions repository.SessionRepository, catalog CatalogService, studio StudioService) NavigationService {
	return &navigationService{sessions: sessions, catalog: catalog, studio: studio}
}

func (s *navigationService) Current(ctx context.Context, sessionID uuid.UUID) (*models.NavigationResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, sessionError(err)
	}

	return s.render(ctx, session), nil
}

// Navigate moves the session to the requested view. A rejected transition
// leaves the previous state untouched.
func (s *navigationService) Navigate(ctx context.Context, sessionID uuid.UUID, req *models.NavigateRequest) (*models.NavigationResponse, error) {

	if err := checkPayload(req); err != nil {
		return nil, err
	}

	session, err := s.sessions.Update(ctx, sessionID, func(session *models.Session) error {
		view, err := s.resolve(ctx, session, req)
		if err != nil {
			return err
		}

		if detail, ok := view.(models.ProductDetailView); ok {
			session.SelectedID = detail.Product.ID
		}

		session.Navigation = models.NavigationState{View: view, ScrollToTop: true}

		return nil
	})
	if err != nil {
		return nil, sessionError(err)
	}

	return s.render(ctx, session), nil
}

// checkPayload enforces that search terms only travel with the shop view and
// product references only with the detail view.
func checkPayload(req *models.NavigateRequest) error {
	if req.SearchTerm != nil && req.ProductID != nil {
		return errors.ValidationError("A navigation carries either a search term or a product, not both")
	}

	if req.SearchTerm != nil && req.View != models.ViewShop {
		return errors.AddValidationError("searchTerm", "only allowed when navigating to shop")
	}

	if req.ProductID != nil && req.View != models.ViewProductDetail {
		return errors.AddValidationError("productId", "only allowed when navigating to product_detail")
	}

	return nil
}

func (s *navigationService) resolve(ctx context.Context, session *models.Session, req *models.NavigateRequest) (models.View, error) {
	switch req.View {
	case models.ViewHome:
		return models.HomeView{}, nil
	case models.ViewShop:
		var term string
		if req.SearchTerm != nil {
			term = *req.SearchTerm
		}
		return models.ShopView{SearchTerm: term}, nil
	case models.ViewConsultant:
		return models.ConsultantView{}, nil
	case models.ViewProductDetail:
		id := session.SelectedID
		if req.ProductID != nil {
			id = *req.ProductID
		}

		if id == "" {
			return nil, errors.AddValidationError("productId", "no product has been selected")
		}

		product, err := s.catalog.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}

		return models.ProductDetailView{Product: *product}, nil
	case models.ViewContact:
		return models.ContactView{}, nil
	case models.ViewServices:
		return models.ServicesView{}, nil
	case models.ViewCart:
		return models.CartView{}, nil
	case models.ViewWishlist:
		return models.WishlistView{}, nil
	}

	return nil, errors.AddValidationError("view", "unknown view")
}

func (s *navigationService) render(ctx context.Context, session *models.Session) *models.NavigationResponse {
	resp := &models.NavigationResponse{Navigation: session.Navigation}

	switch v := session.Navigation.View.(type) {
	case models.HomeView:
		resp.Screen = &models.HomeScreen{Featured: s.catalog.FeaturedProducts(ctx, FeaturedCount)}
	case models.ShopView:
		products := s.catalog.SearchProducts(ctx, v.SearchTerm)
		resp.Screen = &models.ProductListResponse{SearchTerm: v.SearchTerm, Products: products, Total: len(products)}
	case models.ProductDetailView:
		// reviews may have been added since the view was entered
		if product, err := s.catalog.GetProduct(ctx, v.Product.ID); err == nil {
			resp.Screen = product
		} else {
			resp.Screen = &v.Product
		}
	case models.CartView:
		resp.Screen = models.NewCartResponse(session.Cart)
	case models.WishlistView:
		resp.Screen = newWishlistResponse(session.Wishlist)
	case models.ServicesView:
		resp.Screen = s.studio.ListServices(ctx)
	case models.ConsultantView:
		consultation := session.Consultation
		resp.Screen = &consultation
	}

	return resp
}
