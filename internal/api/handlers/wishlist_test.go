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
)

func TestWishlistHandler(t *testing.T) {
	mockWishlistService := new(mocks.WishlistService)
	wishlistHandler := handlers.NewWishlistHandler(mockWishlistService)
	sessionID := uuid.New()

	t.Run("GetWishlist - Success", func(t *testing.T) {
		mockWishlistService.On("GetWishlist", mock.Anything, sessionID).
			Return(&models.WishlistResponse{Items: testProducts, Count: 2}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/wishlist", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		wishlistHandler.GetWishlist().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var body models.WishlistResponse
		decodeData(t, rr, &body)
		assert.Equal(t, 2, body.Count)
	})

	t.Run("Toggle - Success", func(t *testing.T) {
		mockWishlistService.On("Toggle", mock.Anything, sessionID, &models.ToggleWishlistRequest{ProductID: "2"}).
			Return(&models.WishlistToggleResponse{ProductID: "2", Saved: true, Count: 1}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/wishlist/toggle", bytes.NewBufferString(`{"productId":"2"}`), sessionID, nil)
		rr := httptest.NewRecorder()

		wishlistHandler.Toggle().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var body models.WishlistToggleResponse
		decodeData(t, rr, &body)
		assert.True(t, body.Saved)
	})

	t.Run("Toggle - Empty Body", func(t *testing.T) {
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/wishlist/toggle", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		wishlistHandler.Toggle().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeData(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeBadRequest, resp.Error.Code)
	})

	t.Run("Contains - Success", func(t *testing.T) {
		mockWishlistService.On("Contains", mock.Anything, sessionID, "2").
			Return(&models.WishlistContainsResponse{ProductID: "2", Contains: true}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/wishlist/2", nil, sessionID, map[string]string{"id": "2"})
		rr := httptest.NewRecorder()

		wishlistHandler.Contains().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var body models.WishlistContainsResponse
		decodeData(t, rr, &body)
		assert.True(t, body.Contains)
	})

	mockWishlistService.AssertExpectations(t)
}
