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

type NavigationHandler struct {
	navigationService service.NavigationService
	validator         *validator.Validate
}

func NewNavigationHandler(navigationService service.NavigationService) *NavigationHandler {
	return &NavigationHandler{navigationService: navigationService, validator: validator.New()}
}

// GetNavigation godoc
//	@Summary	Active view and its screen data
//	@Tags		Navigation
//	@Produce	json
//	@Success	200	{object}	models.NavigationResponse
//	@Router		/navigation [get]
func (h *NavigationHandler) GetNavigation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		resp, err := h.navigationService.Current(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to load navigation state", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// Navigate godoc
//	@Summary		Switch to another view
//	@Description	searchTerm is only accepted with view=shop and productId only with view=product_detail.
//	@Description	A rejected transition leaves the current view as it was.
//	@Tags			Navigation
//	@Accept			json
//	@Produce		json
//	@Param			target	body		models.NavigateRequest	true	"Target view and payload"
//	@Success		200		{object}	models.NavigationResponse
//	@Failure		400		{object}	response.ErrorResponse	"Invalid target or payload"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Router			/navigation [post]
func (h *NavigationHandler) Navigate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.NavigateRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid navigation input")
			return
		}

		resp, err := h.navigationService.Navigate(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Navigation rejected", slog.String("view", string(req.View)), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Navigated", slog.String("view", string(req.View)))
		response.Success(w, http.StatusOK, resp)
	}
}
