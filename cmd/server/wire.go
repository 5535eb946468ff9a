//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"tickethub/admin-api/internal/config"
	"tickethub/admin-api/internal/domain/catalog"
	"tickethub/admin-api/internal/infrastructure/booking"
	"tickethub/admin-api/internal/infrastructure/logger"
	"tickethub/admin-api/internal/infrastructure/tokenstore"
	"tickethub/admin-api/internal/interfaces/httpserver"
	"tickethub/admin-api/internal/notify"
)

var catalogSet = wire.NewSet(
	newTokenStoreProvider,
	newBookingClient,
	wire.Bind(new(catalog.Upstream), new(*booking.Client)),
	newHub,
	wire.Bind(new(notify.Notifier), new(*notify.Hub)),
	newCatalogService,
	wire.Bind(new(catalog.Service), new(*catalog.DefaultService)),
)

// BuildApplication demonstrates how to assemble the admin service with Wire.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		catalogSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newTokenStoreProvider(cfg *config.Config) (tokenstore.Store, error) {
	return newTokenStore(cfg)
}

func newBookingClient(cfg *config.Config, tokens tokenstore.Store, log zerolog.Logger) *booking.Client {
	return booking.NewClient(cfg.BookingAPIURL, tokens, cfg.BookingTimeout, log)
}

func newHub(log zerolog.Logger) *notify.Hub {
	return notify.NewHub(log, 100)
}

func newCatalogService(upstream catalog.Upstream, notifier notify.Notifier, log zerolog.Logger) *catalog.DefaultService {
	return catalog.NewService(upstream, notifier, log)
}
