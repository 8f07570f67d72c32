package telemetry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nahidasmakeover/boutique/internal/config"
	"github.com/nahidasmakeover/boutique/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTracing(t *testing.T) {

	t.Run("Disabled", func(t *testing.T) {
		shutdown, err := telemetry.SetupTracing(context.Background(), config.Otel{Enabled: false}, "test")

		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})

	t.Run("Enabled", func(t *testing.T) {
		collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer collector.Close()

		cfg := config.Otel{
			Enabled:          true,
			ServiceName:      "boutique-test",
			ExporterEndpoint: strings.TrimPrefix(collector.URL, "http://"),
			Insecure:         true,
			SamplerRatio:     1,
		}

		shutdown, err := telemetry.SetupTracing(context.Background(), cfg, "test")

		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})
}

func TestMiddleware(t *testing.T) {
	handler := telemetry.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}), "test")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
}
