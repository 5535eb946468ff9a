package v1

import (
	"github.com/gin-gonic/gin"

	"tickethub/admin-api/internal/interfaces/httpserver/handlers"
)

func registerCatalogRoutes(router gin.IRoutes, handler *handlers.CatalogHandler) {
	router.GET("/events", handler.ListEvents)
	router.GET("/tickets", handler.ListTickets)
	router.GET("/users", handler.ListUsers)
	router.GET("/vendors", handler.ListVendors)
	router.GET("/payments", handler.ListPayments)
}

func registerNotificationRoutes(router gin.IRoutes, handler *handlers.NotificationHandler) {
	router.GET("/notifications", handler.List)
}
