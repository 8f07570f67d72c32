package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LabelsMatchedPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	handler := Middleware(mux)

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("418", http.MethodGet, "GET /api/v1/products/{id}"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products/4", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("418", http.MethodGet, "GET /api/v1/products/{id}"))
	assert.Equal(t, before+1, after)
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsInFlight))
}

func TestMiddleware_UnmatchedPath(t *testing.T) {
	handler := Middleware(http.NewServeMux())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "unmatched"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "unmatched")))
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(handoffsTotal.WithLabelValues("cart"))
	RecordHandoff("cart")
	assert.Equal(t, before+1, testutil.ToFloat64(handoffsTotal.WithLabelValues("cart")))

	beforeFailed := testutil.ToFloat64(consultationsTotal.WithLabelValues(OutcomeFailed))
	RecordConsultation(OutcomeFailed)
	assert.Equal(t, beforeFailed+1, testutil.ToFloat64(consultationsTotal.WithLabelValues(OutcomeFailed)))

	beforeReviews := testutil.ToFloat64(reviewsSubmitted)
	RecordReview()
	assert.Equal(t, beforeReviews+1, testutil.ToFloat64(reviewsSubmitted))
}
