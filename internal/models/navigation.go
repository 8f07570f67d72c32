package models

import "encoding/json"

type ViewName string

const (
	ViewHome          ViewName = "home"
	ViewShop          ViewName = "shop"
	ViewConsultant    ViewName = "consultant"
	ViewProductDetail ViewName = "product_detail"
	ViewContact       ViewName = "contact"
	ViewServices      ViewName = "services"
	ViewCart          ViewName = "cart"
	ViewWishlist      ViewName = "wishlist"
)

// View is the active screen. Each variant carries exactly the payload it needs.
type View interface {
	Name() ViewName
	isView()
}

type HomeView struct{}

type ShopView struct {
	SearchTerm string
}

type ConsultantView struct{}

type ProductDetailView struct {
	Product Product
}

type ContactView struct{}

type ServicesView struct{}

type CartView struct{}

type WishlistView struct{}

func (HomeView) Name() ViewName          { return ViewHome }
func (ShopView) Name() ViewName          { return ViewShop }
func (ConsultantView) Name() ViewName    { return ViewConsultant }
func (ProductDetailView) Name() ViewName { return ViewProductDetail }
func (ContactView) Name() ViewName       { return ViewContact }
func (ServicesView) Name() ViewName      { return ViewServices }
func (CartView) Name() ViewName          { return ViewCart }
func (WishlistView) Name() ViewName      { return ViewWishlist }

func (HomeView) isView()          {}
func (ShopView) isView()          {}
func (ConsultantView) isView()    {}
func (ProductDetailView) isView() {}
func (ContactView) isView()       {}
func (ServicesView) isView()      {}
func (CartView) isView()          {}
func (WishlistView) isView()      {}

type NavigationState struct {
	View        View
	ScrollToTop bool
}

func NewNavigationState() NavigationState {
	return NavigationState{View: HomeView{}}
}

type navigationStateJSON struct {
	View        ViewName `json:"view"`
	SearchTerm  string   `json:"searchTerm,omitempty"`
	ProductID   string   `json:"productId,omitempty"`
	ScrollToTop bool     `json:"scrollToTop"`
}

func (s NavigationState) MarshalJSON() ([]byte, error) {
	out := navigationStateJSON{ScrollToTop: s.ScrollToTop}

	view := s.View
	if view == nil {
		view = HomeView{}
	}
	out.View = view.Name()

	switch v := view.(type) {
	case ShopView:
		out.SearchTerm = v.SearchTerm
	case ProductDetailView:
		out.ProductID = v.Product.ID
	}

	return json.Marshal(out)
}

type NavigateRequest struct {
	View       ViewName `json:"view" validate:"required,oneof=home shop consultant product_detail contact services cart wishlist"`
	SearchTerm *string  `json:"searchTerm,omitempty" validate:"omitempty,max=100"`
	ProductID  *string  `json:"productId,omitempty"`
}

type HomeScreen struct {
	Featured []Product `json:"featured"`
}

type NavigationResponse struct {
	Navigation NavigationState `json:"navigation"`
	Screen     any             `json:"screen,omitempty"`
}
