package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/hilthontt/devops-sample/internal/infrastructure/json"
)

type bodyContextKey struct{}

// BodyFromContext returns the decoded JSON payload of the request, if any.
// Objects decode to map[string]any and arrays to []any.
func BodyFromContext(ctx context.Context) (any, bool) {
	payload := ctx.Value(bodyContextKey{})
	return payload, payload != nil
}

func hasJSONBody(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}

// jsonBody parses JSON request bodies up front so malformed or oversized
// payloads are rejected before any route runs.
func (app *Application) jsonBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasJSONBody(r) {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, app.config.Body.LimitBytes))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				app.clientError(w, r, http.StatusRequestEntityTooLarge, msgPayloadTooLarge, err)
				return
			}
			app.clientError(w, r, http.StatusBadRequest, msgInvalidJSON, err)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))

		payload, err := json.Decode(raw)
		switch {
		case errors.Is(err, json.ErrEmptyBody):
			next.ServeHTTP(w, r)
			return
		case err != nil:
			app.clientError(w, r, http.StatusBadRequest, msgInvalidJSON, err)
			return
		}

		ctx := context.WithValue(r.Context(), bodyContextKey{}, payload)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
