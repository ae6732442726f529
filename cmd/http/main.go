package main

import (
	"context"
	"expvar"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/hilthontt/devops-sample/internal/infrastructure/configs"
	"github.com/hilthontt/devops-sample/internal/infrastructure/logging"
	"github.com/hilthontt/devops-sample/internal/infrastructure/metrics"
	"github.com/hilthontt/devops-sample/internal/infrastructure/repository"
	"github.com/hilthontt/devops-sample/internal/infrastructure/sysinfo"
	"github.com/hilthontt/devops-sample/internal/infrastructure/tracing"
	"github.com/hilthontt/devops-sample/internal/presentation/api"
	"github.com/hilthontt/devops-sample/internal/presentation/handler/health"
	"github.com/hilthontt/devops-sample/internal/presentation/handler/info"
	"github.com/hilthontt/devops-sample/internal/presentation/handler/users"
)

const (
	serviceName      = "devops-sample"
	metricsNamespace = "devops_sample"
)

func main() {
	configPath := configs.DetermineConfigPath(os.Args[1:])
	cfg, err := configs.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(&logging.LoggerConfig{
		AppName:  serviceName,
		FilePath: cfg.Logger.FilePath,
		Encoding: cfg.Logger.Encoding,
		Level:    cfg.Logger.Level,
		Logger:   cfg.Logger.Logger,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracing.InitTracer(ctx, tracing.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    serviceName,
		ServiceVersion: info.Version,
		Environment:    cfg.Environment,
		Endpoint:       cfg.Tracing.Endpoint,
	})
	if err != nil {
		logger.Fatal(logging.Tracing, logging.Startup, "failed to initialise tracing", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			logger.Warn(logging.Tracing, logging.Shutdown, "failed to flush traces", map[logging.ExtraKey]any{
				logging.ErrorMessage: err.Error(),
			})
		}
	}()

	process := sysinfo.New(sysinfo.Options{Environment: cfg.Environment})
	userRepository := repository.NewUserRepository()

	infoHandler := info.NewHandler(process)
	healthHandler := health.NewHandler(process)
	usersHandler := users.NewHandler(userRepository, process)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(metricsNamespace)
		expvar.Publish("goroutines", expvar.Func(func() any {
			return runtime.NumGoroutine()
		}))
	}

	app := api.NewApplication(*cfg, *infoHandler, *healthHandler, *usersHandler, logger, m)

	mux := app.Mount()
	if err := app.Run(ctx, mux); err != nil {
		logger.Error(logging.General, logging.Startup, "server failed", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
		os.Exit(1)
	}
}
