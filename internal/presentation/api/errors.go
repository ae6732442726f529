package api

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/hilthontt/devops-sample/internal/infrastructure/json"
	"github.com/hilthontt/devops-sample/internal/infrastructure/logging"
)

const (
	msgRouteNotFound   = "Route not found"
	msgInternalError   = "Something went wrong!"
	msgInvalidJSON     = "Invalid JSON payload"
	msgPayloadTooLarge = "Payload too large"
)

// handlerFunc is a route handler that reports faults instead of writing
// its own error response.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (app *Application) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			app.internalError(w, r, err, nil)
		}
	}
}

func (app *Application) notFound(w http.ResponseWriter, r *http.Request) {
	app.writeError(w, r, http.StatusNotFound, msgRouteNotFound)
}

// internalError logs the fault and answers with the generic 500 body. The
// fault detail never reaches the client. When the response has already
// started only the log entry is produced.
func (app *Application) internalError(w http.ResponseWriter, r *http.Request, err error, stack []byte) {
	extra := map[logging.ExtraKey]any{
		logging.Method:       r.Method,
		logging.Path:         r.URL.Path,
		logging.RequestId:    middleware.GetReqID(r.Context()),
		logging.ErrorMessage: err.Error(),
	}
	if stack != nil {
		extra[logging.StackTrace] = string(stack)
	}

	app.logger.Error(logging.Internal, logging.Recover, "unhandled fault while serving request", extra)

	if rw, ok := w.(interface{ Written() bool }); ok && rw.Written() {
		return
	}

	app.writeError(w, r, http.StatusInternalServerError, msgInternalError)
}

func (app *Application) clientError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	app.logger.Warn(logging.Validation, logging.BodyParse, "rejected request body", map[logging.ExtraKey]any{
		logging.Method:       r.Method,
		logging.Path:         r.URL.Path,
		logging.StatusCode:   status,
		logging.ErrorMessage: err.Error(),
	})

	app.writeError(w, r, status, msg)
}

func (app *Application) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if err := json.WriteError(w, status, app.config.Environment, msg); err != nil {
		app.logger.Warn(logging.IO, logging.API, "failed to write error response", map[logging.ExtraKey]any{
			logging.Path:         r.URL.Path,
			logging.StatusCode:   status,
			logging.ErrorMessage: err.Error(),
		})
	}
}
