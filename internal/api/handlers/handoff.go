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

type HandoffHandler struct {
	handoffService service.HandoffService
	validator      *validator.Validate
}

func NewHandoffHandler(handoffService service.HandoffService) *HandoffHandler {
	return &HandoffHandler{handoffService: handoffService, validator: validator.New()}
}

// Checkout godoc
//	@Summary		Send the bag as a WhatsApp order
//	@Description	Builds the order message and link, then empties the bag. Delivery details are optional.
//	@Tags			Handoff
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest	false	"Delivery details"
//	@Success		200			{object}	models.Handoff
//	@Failure		400			{object}	response.ErrorResponse	"Empty bag or invalid details"
//	@Router			/cart/checkout [post]
func (h *HandoffHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.CheckoutRequest
		if r.ContentLength != 0 && !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		handoff, err := h.handoffService.Checkout(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout handoff created")
		response.Success(w, http.StatusOK, handoff)
	}
}

// BuyNow godoc
//	@Summary	Order a single product through WhatsApp
//	@Tags		Handoff
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Product ID"
//	@Param		order	body		models.BuyNowRequest	true	"Customer details and optional shade"
//	@Success	200		{object}	models.Handoff
//	@Failure	400		{object}	response.ErrorResponse	"Missing customer details"
//	@Failure	404		{object}	response.ErrorResponse	"Product not found"
//	@Router		/products/{id}/buy [post]
func (h *HandoffHandler) BuyNow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("productId", id))

		var req models.BuyNowRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid buy now input")
			return
		}

		handoff, err := h.handoffService.BuyNow(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Buy now failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Buy now handoff created")
		response.Success(w, http.StatusOK, handoff)
	}
}

// Contact godoc
//	@Summary	Send a message to the studio
//	@Tags		Handoff
//	@Accept		json
//	@Produce	json
//	@Param		message	body		models.ContactRequest	true	"Contact form"
//	@Success	200		{object}	models.Handoff
//	@Failure	400		{object}	response.ErrorResponse	"Validation error"
//	@Router		/contact [post]
func (h *HandoffHandler) Contact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ContactRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid contact input")
			return
		}

		handoff, err := h.handoffService.Contact(r.Context(), &req)
		if err != nil {
			logger.Error("Contact handoff failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, handoff)
	}
}
