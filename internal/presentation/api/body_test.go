package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hilthontt/devops-sample/internal/infrastructure/configs"
	"github.com/hilthontt/devops-sample/internal/infrastructure/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyFromContext_Empty(t *testing.T) {
	payload, ok := BodyFromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, payload)
}

func TestJSONBody_StoresPayload(t *testing.T) {
	app := &Application{
		config: configs.Config{Environment: "test", Body: configs.BodyConfig{LimitBytes: 1024}},
		logger: logging.Nop(),
	}

	var (
		got    any
		gotOK  bool
		reread string
	)
	h := app.jsonBody(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, gotOK = BodyFromContext(r.Context())
		raw, _ := io.ReadAll(r.Body)
		reread = string(raw)
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Alice","age":30}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.True(t, gotOK)

	obj, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alice", obj["name"])
	assert.Equal(t, json.Number("30"), obj["age"])
	assert.Equal(t, `{"name":"Alice","age":30}`, reread)
}

func TestHasJSONBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		want        bool
	}{
		{name: "json", body: `{}`, contentType: "application/json", want: true},
		{name: "json with charset", body: `[]`, contentType: "application/json; charset=utf-8", want: true},
		{name: "text", body: `{}`, contentType: "text/plain", want: false},
		{name: "missing content type", body: `{}`, want: false},
		{name: "empty body", contentType: "application/json", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			assert.Equal(t, tt.want, hasJSONBody(req))
		})
	}
}

func TestHasDotSegment(t *testing.T) {
	assert.True(t, hasDotSegment("/.env"))
	assert.True(t, hasDotSegment("/assets/.git/config"))
	assert.False(t, hasDotSegment("/assets/app.js"))
	assert.False(t, hasDotSegment("/"))
}
