package json

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()

	err := Write(rec, http.StatusCreated, map[string]any{"status": "healthy"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestWrite_EncodeFailureLeavesResponseUntouched(t *testing.T) {
	rec := httptest.NewRecorder()

	err := Write(rec, http.StatusOK, map[string]any{"uptime": math.Inf(1)})
	require.Error(t, err)

	assert.Empty(t, rec.Header().Get("Content-Type"))
	assert.Zero(t, rec.Body.Len())
	assert.False(t, rec.Flushed)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, WriteError(rec, http.StatusNotFound, "production", "Route not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Route not found","environment":"production"}`, rec.Body.String())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
		invalid bool
	}{
		{name: "object", raw: `{"name":"John Doe","id":1}`},
		{name: "array", raw: ` [1, 2, 3] `},
		{name: "empty", raw: "  ", wantErr: ErrEmptyBody},
		{name: "scalar string", raw: `"hello"`, wantErr: ErrNotObjectOrArray},
		{name: "scalar number", raw: `42`, wantErr: ErrNotObjectOrArray},
		{name: "malformed", raw: `{"name":`, invalid: true},
		{name: "trailing value", raw: `{} {}`, wantErr: ErrTrailingData},
		{name: "trailing brace", raw: `{}}`, wantErr: ErrTrailingData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Decode([]byte(tt.raw))

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, payload)
			case tt.invalid:
				assert.Error(t, err)
				assert.Nil(t, payload)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, payload)
			}
		})
	}
}
