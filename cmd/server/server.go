package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"tickethub/admin-api/internal/config"
	"tickethub/admin-api/internal/domain/catalog"
	"tickethub/admin-api/internal/infrastructure/booking"
	"tickethub/admin-api/internal/infrastructure/logger"
	"tickethub/admin-api/internal/infrastructure/observability"
	"tickethub/admin-api/internal/infrastructure/queue"
	"tickethub/admin-api/internal/infrastructure/tokenstore"
	"tickethub/admin-api/internal/interfaces/httpserver"
	"tickethub/admin-api/internal/notify"
	"tickethub/admin-api/internal/worker"
)

// Application bundles the long-running pieces of the admin service.
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

// NewApplication constructs the application.
func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the HTTP server until the context is cancelled.
func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	tokens, err := newTokenStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize token store")
	}

	bookingClient := booking.NewClient(cfg.BookingAPIURL, tokens, cfg.BookingTimeout, log)
	hub := notify.NewHub(log, 100)
	catalogService := catalog.NewService(bookingClient, hub, log)

	taskQueue := queue.NewMemoryQueue(64)
	refreshPool := worker.NewPool(
		taskQueue,
		catalogService,
		worker.Config{
			WorkerCount:     cfg.RefreshWorkerCount,
			TaskTimeout:     cfg.RefreshTaskTimeout,
			PollPeriod:      cfg.RefreshPollPeriod,
			RefreshInterval: cfg.RefreshInterval,
		},
		log,
	)

	if err := refreshPool.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("start worker pool")
	}
	defer refreshPool.Stop()

	httpServer := httpserver.New(cfg, log, catalogService, hub)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func newTokenStore(cfg *config.Config) (tokenstore.Store, error) {
	if cfg.TokenFile == "" {
		return tokenstore.NewMemory(), nil
	}
	return tokenstore.NewFileStore(cfg.TokenFile)
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
