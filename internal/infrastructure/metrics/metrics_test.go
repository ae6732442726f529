package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFinished_RecordsCounterAndGauge(t *testing.T) {
	m := New("devops_sample")

	m.RequestStarted()
	m.RequestStarted()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.inFlight))

	m.RequestFinished(http.MethodGet, "/health", http.StatusOK, 5*time.Millisecond)
	m.RequestFinished(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues("GET", UnmatchedRoute, "404")))
}

func TestHandler_ExposesMetricsAndExpvar(t *testing.T) {
	m := New("devops_sample")
	m.RequestStarted()
	m.RequestFinished(http.MethodGet, "/", http.StatusOK, time.Millisecond)

	h := m.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `devops_sample_http_requests_total{method="GET",route="/",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "devops_sample_http_request_duration_seconds")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/vars", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "memstats")
}
