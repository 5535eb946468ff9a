package handlers

import (
	"github.com/rs/zerolog"

	"tickethub/admin-api/internal/domain/catalog"
	"tickethub/admin-api/internal/notify"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Catalog       *CatalogHandler
	Notifications *NotificationHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(catalogService catalog.Service, hub *notify.Hub, perPage int, log zerolog.Logger) *Provider {
	return &Provider{
		Catalog:       NewCatalogHandler(catalogService, perPage, log),
		Notifications: NewNotificationHandler(hub),
	}
}
