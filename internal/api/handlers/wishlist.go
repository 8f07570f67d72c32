package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nahidasmakeover/boutique/internal/api/middleware"
	"github.com/nahidasmakeover/boutique/internal/models"
	service "github.com/nahidasmakeover/boutique/internal/services"
	"github.com/nahidasmakeover/boutique/internal/utils"
	"github.com/nahidasmakeover/boutique/internal/utils/response"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
	validator       *validator.Validate
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService, validator: validator.New()}
}

// GetWishlist godoc
//	@Summary	Get the wishlist
//	@Tags		Wishlist
//	@Produce	json
//	@Success	200	{object}	models.WishlistResponse
//	@Router		/wishlist [get]
func (h *WishlistHandler) GetWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		wishlist, err := h.wishlistService.GetWishlist(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to get wishlist", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, wishlist)
	}
}

// Toggle godoc
//	@Summary	Save or unsave a product
//	@Tags		Wishlist
//	@Accept		json
//	@Produce	json
//	@Param		item	body		models.ToggleWishlistRequest	true	"Product to toggle"
//	@Success	200		{object}	models.WishlistToggleResponse
//	@Failure	404		{object}	response.ErrorResponse	"Product not found"
//	@Router		/wishlist/toggle [post]
func (h *WishlistHandler) Toggle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.ToggleWishlistRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid wishlist toggle input")
			return
		}

		result, err := h.wishlistService.Toggle(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to toggle wishlist", slog.String("productId", req.ProductID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Wishlist toggled", slog.String("productId", result.ProductID), slog.Bool("saved", result.Saved))
		response.Success(w, http.StatusOK, result)
	}
}

func (h *WishlistHandler) Contains() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		result, err := h.wishlistService.Contains(r.Context(), sessionID, r.PathValue("id"))
		if err != nil {
			logger.Error("Failed to check wishlist", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}
