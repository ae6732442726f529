package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hilthontt/devops-sample/internal/infrastructure/configs"
	"github.com/hilthontt/devops-sample/internal/infrastructure/logging"
	"github.com/hilthontt/devops-sample/internal/infrastructure/metrics"
	healthHandler "github.com/hilthontt/devops-sample/internal/presentation/handler/health"
	infoHandler "github.com/hilthontt/devops-sample/internal/presentation/handler/info"
	usersHandler "github.com/hilthontt/devops-sample/internal/presentation/handler/users"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 5 * time.Second

type Application struct {
	config        configs.Config
	infoHandler   infoHandler.Handler
	healthHandler healthHandler.Handler
	usersHandler  usersHandler.Handler
	logger        logging.Logger
	metrics       *metrics.Metrics
}

// NewApplication wires the responder. metrics may be nil, in which case no
// request metrics are collected and no admin listener is started.
func NewApplication(
	config configs.Config,
	infoHandler infoHandler.Handler,
	healthHandler healthHandler.Handler,
	usersHandler usersHandler.Handler,
	logger logging.Logger,
	metrics *metrics.Metrics,
) *Application {
	return &Application{
		config:        config,
		infoHandler:   infoHandler,
		healthHandler: healthHandler,
		usersHandler:  usersHandler,
		logger:        logger,
		metrics:       metrics,
	}
}

func (app *Application) Mount() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(echoRequestID)
	r.Use(middleware.RealIP)

	r.Use(app.securityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders:     []string{"*"},
		OptionsPassthrough: true,
	}))
	r.Use(endPreflight)
	r.Use(app.loggerMiddleware)
	if app.metrics != nil {
		r.Use(app.prometheusMiddleware)
	}
	r.Use(app.recoverer)
	r.Use(app.jsonBody)
	r.Use(app.staticFiles)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.GetHead)

	// a known path with the wrong method is still an unknown route
	r.NotFound(app.notFound)
	r.MethodNotAllowed(app.notFound)

	r.Get("/", app.handle(app.infoHandler.GetInfo))
	r.Get("/health", app.handle(app.healthHandler.GetHealth))
	r.Get("/api/users", app.handle(app.usersHandler.ListUsers))

	return otelhttp.NewHandler(r, "http.server",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

// Run serves mux until ctx is done, then shuts the listeners down gracefully.
func (app *Application) Run(ctx context.Context, mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.HTTP.Addr(),
		Handler:      mux,
		ReadTimeout:  app.config.HTTP.ReadTimeout,
		WriteTimeout: app.config.HTTP.WriteTimeout,
		IdleTimeout:  app.config.HTTP.IdleTimeout,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
	}

	servers := []*http.Server{srv}
	serveErr := make(chan error, 2)

	go func() {
		serveErr <- srv.Serve(ln)
	}()

	if app.metrics != nil {
		admin := &http.Server{
			Addr:              app.config.Metrics.Addr,
			Handler:           app.metrics.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		servers = append(servers, admin)

		go func() {
			serveErr <- admin.ListenAndServe()
		}()

		app.logger.Info(logging.Prometheus, logging.Startup, "metrics server has started", map[logging.ExtraKey]any{
			logging.Address: admin.Addr,
		})
	}

	port := ln.Addr().(*net.TCPAddr).Port
	app.logger.Infof("Server running on port %d in %s environment", port, app.config.Environment)

	var runErr error
	select {
	case <-ctx.Done():
		app.logger.Info(logging.General, logging.Shutdown, "shutdown requested", nil)
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, s := range servers {
		if err := s.Shutdown(shutdownCtx); err != nil && runErr == nil {
			runErr = fmt.Errorf("failed to shut down %s: %w", s.Addr, err)
		}
	}

	app.logger.Info(logging.General, logging.Shutdown, "server has stopped", map[logging.ExtraKey]any{
		logging.Address: ln.Addr().String(),
	})

	return runErr
}
