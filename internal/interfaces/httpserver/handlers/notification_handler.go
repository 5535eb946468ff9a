package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tickethub/admin-api/internal/interfaces/httpserver/responses"
	"tickethub/admin-api/internal/notify"
)

// NotificationHandler serves the recent transient notifications the
// dashboard shows as toasts.
type NotificationHandler struct {
	hub *notify.Hub
}

// NewNotificationHandler constructs the handler.
func NewNotificationHandler(hub *notify.Hub) *NotificationHandler {
	return &NotificationHandler{hub: hub}
}

// List handles GET /v1/notifications
// @Summary List recent notifications
// @Produce json
// @Router /v1/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, responses.OK(h.hub.Recent(), ""))
}
