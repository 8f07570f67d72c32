package handlers_test

import (
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

func TestGetSession(t *testing.T) {
	mockSessionService := new(mocks.SessionService)
	sessionHandler := handlers.NewSessionHandler(mockSessionService)
	sessionID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		session := models.NewSession()
		session.ID = sessionID
		session.Cart.Add(models.Product{ID: "1", Price: 52})

		mockSessionService.On("Get", mock.Anything, sessionID).Return(session, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/session", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		sessionHandler.GetSession().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]any
		resp := decodeData(t, rr, &body)
		assert.True(t, resp.Success)
		assert.Equal(t, sessionID.String(), body["id"])
		assert.Equal(t, false, body["introSeen"])
		assert.Equal(t, float64(1), body["cartCount"])
		assert.Equal(t, "home", body["navigation"].(map[string]any)["view"])

		mockSessionService.AssertExpectations(t)
	})

	t.Run("Failure - No Session In Context", func(t *testing.T) {
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/session", nil, nil)
		rr := httptest.NewRecorder()

		sessionHandler.GetSession().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		resp := decodeData(t, rr, nil)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, resp.Error.Code)
	})
}

func TestMarkIntroSeen(t *testing.T) {
	mockSessionService := new(mocks.SessionService)
	sessionHandler := handlers.NewSessionHandler(mockSessionService)
	sessionID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		session := models.NewSession()
		session.ID = sessionID
		session.IntroSeen = true

		mockSessionService.On("MarkIntroSeen", mock.Anything, sessionID).Return(session, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/session/intro", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		sessionHandler.MarkIntroSeen().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var body map[string]any
		decodeData(t, rr, &body)
		assert.Equal(t, true, body["introSeen"])
	})

	t.Run("Failure - Session Expired", func(t *testing.T) {
		mockSessionService.On("MarkIntroSeen", mock.Anything, sessionID).Return(nil, appErrors.UnauthorizedError("Session expired")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/session/intro", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		sessionHandler.MarkIntroSeen().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockSessionService.AssertExpectations(t)
	})
}
