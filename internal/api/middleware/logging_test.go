package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nahidasmakeover/boutique/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {

	t.Run("Generates Correlation ID", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := middleware.LoggerFromContext(r.Context())
			require.NotNil(t, logger)
			w.WriteHeader(http.StatusTeapot)
		})

		rr := httptest.NewRecorder()
		middleware.Logging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

		assert.Equal(t, http.StatusTeapot, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("Keeps Incoming Correlation ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-123")

		rr := httptest.NewRecorder()
		middleware.Logging(http.NotFoundHandler()).ServeHTTP(rr, req)

		assert.Equal(t, "req-123", rr.Header().Get("X-Request-ID"))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
