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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary	Get the bag
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	models.CartResponse
//	@Failure	401	{object}	response.ErrorResponse	"Session expired"
//	@Router		/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to get cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add a product to the bag
//	@Description	Adding the same product twice creates two entries.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddCartItemRequest	true	"Product to add"
//	@Success		200		{object}	models.CartResponse
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to add item to cart", slog.String("productId", req.ProductID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("productId", req.ProductID), slog.Int("count", cart.Count))
		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//	@Summary		Remove a bag entry by position
//	@Description	An index past the end of the bag leaves it unchanged.
//	@Tags			Cart
//	@Produce		json
//	@Param			index	path		int	true	"Entry position"
//	@Success		200		{object}	models.CartResponse
//	@Failure		400		{object}	response.ErrorResponse	"Invalid index"
//	@Router			/cart/items/{index} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		index, err := utils.ParseIndex(r, "index")
		if err != nil {
			logger.Warn("Invalid cart index", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), sessionID, index)
		if err != nil {
			logger.Error("Failed to remove cart item", slog.Int("index", index), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
