package json

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const ContentType = "application/json; charset=utf-8"

// Write encodes data before touching the response, so an encoding failure
// leaves the writer untouched and the caller can still send an error.
func Write(w http.ResponseWriter, status int, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
