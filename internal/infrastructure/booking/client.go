// Package booking wraps the external booking backend. Its response shapes
// are inconsistent, so every call funnels through a normalizer that produces
// one canonical envelope; callers check env.Success instead of handling
// errors.
package booking

import (
	"context"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"tickethub/admin-api/internal/infrastructure/metrics"
	"tickethub/admin-api/internal/infrastructure/tokenstore"
)

// Client is the Resty-backed booking API client.
type Client struct {
	httpClient *resty.Client
	tokens     tokenstore.Store
	log        zerolog.Logger
}

// NewClient creates a client for the given backend base URL. The token store
// is read on every request; writers (login flows) live elsewhere.
func NewClient(baseURL string, tokens tokenstore.Store, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json").
			SetTimeout(timeout),
		tokens: tokens,
		log:    log.With().Str("component", "booking-client").Logger(),
	}
}

// Options carries the optional parts of a request.
type Options struct {
	Query url.Values
	Body  any
}

// Do performs one request and always returns the canonical envelope. Every
// expected failure mode — connectivity, malformed body, failure status,
// application-level failure flag — is folded into the envelope; callers can
// rely on `if !env.Success` without any error handling around the call.
func (c *Client) Do(ctx context.Context, method, path string, opts *Options) Envelope {
	start := time.Now()

	req := c.httpClient.R().SetContext(ctx)
	if opts != nil {
		if len(opts.Query) > 0 {
			req.SetQueryParamsFromValues(opts.Query)
		}
		if opts.Body != nil {
			req.SetHeader("Content-Type", "application/json").SetBody(opts.Body)
		}
	}
	if token, ok := c.tokens.Token(); ok {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		metrics.RecordUpstreamRequest(path, "network_error", time.Since(start).Seconds())
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("booking request failed")
		return Envelope{Success: false, Message: msgNetworkError, Error: err.Error()}
	}

	env := normalize(resp.StatusCode(), resp.Header().Get("Content-Type"), resp.Body())

	outcome := "success"
	if !env.Success {
		outcome = "failure"
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Str("message", env.Message).
			Msg("booking request rejected")
	}
	metrics.RecordUpstreamRequest(path, outcome, time.Since(start).Seconds())

	return env
}
