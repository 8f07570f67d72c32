package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nahidasmakeover/boutique/internal/api/middleware"
	"github.com/nahidasmakeover/boutique/internal/models"
	service "github.com/nahidasmakeover/boutique/internal/services"
	"github.com/nahidasmakeover/boutique/internal/utils"
	"github.com/nahidasmakeover/boutique/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

// ListProducts godoc
//	@Summary		List or search products
//	@Description	Without q every product is returned; with q products whose name or category contains it, ignoring case.
//	@Tags			Products
//	@Produce		json
//	@Param			q	query		string	false	"Search term"
//	@Success		200	{object}	models.ProductListResponse
//	@Router			/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		term := strings.TrimSpace(r.URL.Query().Get("q"))

		var products []models.Product
		if term == "" {
			products = h.catalogService.ListProducts(r.Context())
		} else {
			products = h.catalogService.SearchProducts(r.Context(), term)
		}

		logger.Info("Products listed", slog.String("searchTerm", term), slog.Int("count", len(products)))
		response.Success(w, http.StatusOK, &models.ProductListResponse{
			SearchTerm: term,
			Products:   products,
			Total:      len(products),
		})
	}
}

// GetProduct godoc
//	@Summary	Get a product with its reviews
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	models.Product
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Router		/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Warn("Product lookup failed", slog.String("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// AddReview godoc
//	@Summary		Submit a review
//	@Description	Adds a review to the front of the product's review list. The review is stored even if persisting it fails.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID"
//	@Param			review	body		models.CreateReviewRequest	true	"Review"
//	@Success		201		{object}	models.Review
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id}/reviews [post]
func (h *CatalogHandler) AddReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("productId", id))

		var req models.CreateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review input")
			return
		}

		review, err := h.catalogService.AddReview(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Review rejected", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, review)
	}
}
