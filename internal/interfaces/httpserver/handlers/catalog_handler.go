package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tickethub/admin-api/internal/domain/catalog"
	"tickethub/admin-api/internal/interfaces/httpserver/requests"
	"tickethub/admin-api/internal/interfaces/httpserver/responses"
	"tickethub/admin-api/internal/tabular"
)

// CatalogHandler exposes the entity listing endpoints backing the dashboard
// tables.
type CatalogHandler struct {
	service catalog.Service
	perPage int
	log     zerolog.Logger
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(service catalog.Service, perPage int, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		perPage: perPage,
		log:     log.With().Str("handler", "catalog").Logger(),
	}
}

// ListEvents handles GET /v1/events
// @Summary List events
// @Produce json
// @Param search query string false "Search text, forwarded to the backend"
// @Param page query int false "Page number"
// @Param sort query string false "Sort column key"
// @Param direction query string false "asc or desc"
// @Router /v1/events [get]
func (h *CatalogHandler) ListEvents(c *gin.Context) {
	renderList(c, h, catalog.EventColumns(), h.service.ListEvents)
}

// ListTickets handles GET /v1/tickets
// @Summary List tickets
// @Produce json
// @Router /v1/tickets [get]
func (h *CatalogHandler) ListTickets(c *gin.Context) {
	renderList(c, h, catalog.TicketColumns(), h.service.ListTickets)
}

// ListUsers handles GET /v1/users
// @Summary List users
// @Produce json
// @Router /v1/users [get]
func (h *CatalogHandler) ListUsers(c *gin.Context) {
	renderList(c, h, catalog.UserColumns(), h.service.ListUsers)
}

// ListVendors handles GET /v1/vendors
// @Summary List vendors
// @Produce json
// @Router /v1/vendors [get]
func (h *CatalogHandler) ListVendors(c *gin.Context) {
	renderList(c, h, catalog.VendorColumns(), h.service.ListVendors)
}

// ListPayments handles GET /v1/payments
// @Summary List payments
// @Produce json
// @Router /v1/payments [get]
func (h *CatalogHandler) ListPayments(c *gin.Context) {
	renderList(c, h, catalog.PaymentColumns(), h.service.ListPayments)
}

// renderList assembles a tabular view for one entity listing. The view's
// search hook is wired to the catalog fetch, so setting the query drives the
// refetch and resets the page, exactly as an interactive table would.
func renderList[T any](
	c *gin.Context,
	h *CatalogHandler,
	columns []tabular.Column[T],
	list func(context.Context, string) (catalog.ListResult[T], error),
) {
	var query requests.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, responses.Fail("invalid query parameters", err.Error()))
		return
	}

	view := tabular.New(columns, h.perPage)
	view.SetEmptyMessage("no records found")

	var (
		result  catalog.ListResult[T]
		listErr error
	)
	view.OnSearch(func(q string) {
		result, listErr = list(c.Request.Context(), q)
		view.SetRecords(result.Records)
	})

	view.SetSearchQuery(query.Search)
	if listErr != nil {
		c.JSON(http.StatusBadGateway, responses.Fail(listErr.Error(), ""))
		return
	}

	if query.Sort != "" {
		view.SetSort(query.Sort)
		if strings.EqualFold(query.Direction, "desc") {
			// Second call on the same column flips to descending.
			view.SetSort(query.Sort)
		}
	}
	view.GoToPage(query.Page)

	c.JSON(http.StatusOK, responses.OK(responses.TableFromView(view, result), result.Message))
}
