package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"tickethub/admin-api/internal/domain/catalog"
)

// Collection endpoints on the booking backend.
const (
	pathEvents   = "/admin/events"
	pathTickets  = "/admin/tickets"
	pathUsers    = "/admin/users"
	pathVendors  = "/admin/vendors"
	pathPayments = "/admin/payments"
)

// list fetches one collection endpoint and decodes the canonical data
// payload into typed records.
func list[T any](ctx context.Context, c *Client, path, search string) ([]T, catalog.Outcome) {
	opts := &Options{}
	if search != "" {
		opts.Query = url.Values{"search": []string{search}}
	}

	env := c.Do(ctx, http.MethodGet, path, opts)
	if !env.Success {
		return nil, catalog.Outcome{Message: env.Message, Err: env.Error}
	}

	var records []T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &records); err != nil {
			return nil, catalog.Outcome{Message: msgInvalidFormat, Err: err.Error()}
		}
	}
	return records, catalog.Outcome{OK: true, Message: env.Message}
}

// ListEvents fetches the events collection.
func (c *Client) ListEvents(ctx context.Context, search string) ([]catalog.Event, catalog.Outcome) {
	return list[catalog.Event](ctx, c, pathEvents, search)
}

// ListTickets fetches the tickets collection.
func (c *Client) ListTickets(ctx context.Context, search string) ([]catalog.Ticket, catalog.Outcome) {
	return list[catalog.Ticket](ctx, c, pathTickets, search)
}

// ListUsers fetches the users collection.
func (c *Client) ListUsers(ctx context.Context, search string) ([]catalog.User, catalog.Outcome) {
	return list[catalog.User](ctx, c, pathUsers, search)
}

// ListVendors fetches the vendors collection.
func (c *Client) ListVendors(ctx context.Context, search string) ([]catalog.Vendor, catalog.Outcome) {
	return list[catalog.Vendor](ctx, c, pathVendors, search)
}

// ListPayments fetches the payments collection.
func (c *Client) ListPayments(ctx context.Context, search string) ([]catalog.Payment, catalog.Outcome) {
	return list[catalog.Payment](ctx, c, pathPayments, search)
}

// Ensure interface compliance.
var _ catalog.Upstream = (*Client)(nil)
