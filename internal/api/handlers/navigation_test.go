package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/nahidasmakeover/boutique/internal/api/handlers"
	appErrors "github.com/nahidasmakeover/boutique/internal/errors"
	"github.com/nahidasmakeover/boutique/internal/models"
	"github.com/nahidasmakeover/boutique/internal/services/mocks"
	"github.com/nahidasmakeover/boutique/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetNavigation(t *testing.T) {
	mockNavigationService := new(mocks.NavigationService)
	navigationHandler := handlers.NewNavigationHandler(mockNavigationService)
	sessionID := uuid.New()

	mockNavigationService.On("Current", mock.Anything, sessionID).Return(&models.NavigationResponse{
		Navigation: models.NewNavigationState(),
		Screen:     &models.HomeScreen{Featured: testProducts},
	}, nil).Once()

	req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/navigation", nil, sessionID, nil)
	rr := httptest.NewRecorder()

	navigationHandler.GetNavigation().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]any
	decodeData(t, rr, &body)
	assert.Equal(t, "home", body["navigation"].(map[string]any)["view"])
	assert.Len(t, body["screen"].(map[string]any)["featured"], 2)

	mockNavigationService.AssertExpectations(t)
}

func TestNavigate(t *testing.T) {
	mockNavigationService := new(mocks.NavigationService)
	navigationHandler := handlers.NewNavigationHandler(mockNavigationService)
	sessionID := uuid.New()

	t.Run("Success - Shop With Search", func(t *testing.T) {
		// Arrange
		mockNavigationService.On("Navigate", mock.Anything, sessionID, mock.MatchedBy(func(req *models.NavigateRequest) bool {
			return req.View == models.ViewShop && req.SearchTerm != nil && *req.SearchTerm == "lip" && req.ProductID == nil
		})).Return(&models.NavigationResponse{
			Navigation: models.NavigationState{View: models.ShopView{SearchTerm: "lip"}, ScrollToTop: true},
			Screen:     &models.ProductListResponse{SearchTerm: "lip", Products: testProducts[1:], Total: 1},
		}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/navigation",
			bytes.NewBufferString(`{"view":"shop","searchTerm":"lip"}`), sessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		navigationHandler.Navigate().ServeHTTP(rr, req)

		// Assert
		require.Equal(t, http.StatusOK, rr.Code)
		var body map[string]any
		decodeData(t, rr, &body)
		nav := body["navigation"].(map[string]any)
		assert.Equal(t, "shop", nav["view"])
		assert.Equal(t, "lip", nav["searchTerm"])
		assert.Equal(t, true, nav["scrollToTop"])
	})

	t.Run("Success - Product Detail", func(t *testing.T) {
		mockNavigationService.On("Navigate", mock.Anything, sessionID, mock.MatchedBy(func(req *models.NavigateRequest) bool {
			return req.View == models.ViewProductDetail && req.ProductID != nil && *req.ProductID == "1"
		})).Return(&models.NavigationResponse{
			Navigation: models.NavigationState{View: models.ProductDetailView{Product: testProducts[0]}, ScrollToTop: true},
			Screen:     &testProducts[0],
		}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/navigation",
			bytes.NewBufferString(`{"view":"product_detail","productId":"1"}`), sessionID, nil)
		rr := httptest.NewRecorder()

		navigationHandler.Navigate().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body map[string]any
		decodeData(t, rr, &body)
		assert.Equal(t, "1", body["navigation"].(map[string]any)["productId"])
		assert.Equal(t, "Goddess Silk Foundation", body["screen"].(map[string]any)["name"])
	})

	t.Run("Failure - Unknown View", func(t *testing.T) {
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/navigation",
			bytes.NewBufferString(`{"view":"checkout"}`), sessionID, nil)
		rr := httptest.NewRecorder()

		navigationHandler.Navigate().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeData(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		mockNavigationService.On("Navigate", mock.Anything, sessionID, mock.Anything).
			Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/navigation",
			bytes.NewBufferString(`{"view":"product_detail","productId":"999"}`), sessionID, nil)
		rr := httptest.NewRecorder()

		navigationHandler.Navigate().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	mockNavigationService.AssertExpectations(t)
}
