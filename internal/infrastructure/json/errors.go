package json

import "net/http"

type ErrorResponse struct {
	Error       string `json:"error"`
	Environment string `json:"environment"`
}

func WriteError(w http.ResponseWriter, status int, environment, msg string) error {
	return Write(w, status, ErrorResponse{
		Error:       msg,
		Environment: environment,
	})
}
