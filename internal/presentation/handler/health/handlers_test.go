package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hilthontt/devops-sample/internal/infrastructure/sysinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getHealth(t *testing.T, h *Handler) healthResponse {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, h.GetHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetHealth(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start.Add(2500 * time.Millisecond)

	h := NewHandler(sysinfo.New(sysinfo.Options{
		Environment: "production",
		StartedAt:   start,
		Now:         func() time.Time { return now },
	}))

	body := getHealth(t, h)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "production", body.Environment)
	assert.InDelta(t, 2.5, body.Uptime, 1e-9)
	assert.Equal(t, "2024-01-01T12:00:02.500Z", body.Timestamp)
}

func TestGetHealth_UptimeGrows(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start.Add(10 * time.Second)

	h := NewHandler(sysinfo.New(sysinfo.Options{
		Environment: "development",
		StartedAt:   start,
		Now:         func() time.Time { return now },
	}))

	first := getHealth(t, h)
	now = now.Add(time.Second)
	second := getHealth(t, h)

	assert.GreaterOrEqual(t, first.Uptime, 0.0)
	assert.InDelta(t, first.Uptime+1, second.Uptime, 1e-9)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Environment, second.Environment)
}
