package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"tickethub/admin-api/internal/infrastructure/snapshot"
	"tickethub/admin-api/internal/notify"
)

// Outcome reports how an upstream fetch concluded. It mirrors the canonical
// envelope without exposing the wire type to the domain.
type Outcome struct {
	OK      bool
	Message string
	Err     string
}

// Upstream fetches entity collections from the booking backend. A non-empty
// search is forwarded to the backend as a query parameter; the backend owns
// text filtering.
type Upstream interface {
	ListEvents(ctx context.Context, search string) ([]Event, Outcome)
	ListTickets(ctx context.Context, search string) ([]Ticket, Outcome)
	ListUsers(ctx context.Context, search string) ([]User, Outcome)
	ListVendors(ctx context.Context, search string) ([]Vendor, Outcome)
	ListPayments(ctx context.Context, search string) ([]Payment, Outcome)
}

// ListResult carries a fetched collection plus staleness metadata when the
// records came from the snapshot cache instead of the live backend.
type ListResult[T any] struct {
	Records    []T
	Stale      bool
	CapturedAt time.Time
	Message    string
}

// Service defines the listing and refresh operations exposed to the HTTP and
// worker layers.
type Service interface {
	ListEvents(ctx context.Context, search string) (ListResult[Event], error)
	ListTickets(ctx context.Context, search string) (ListResult[Ticket], error)
	ListUsers(ctx context.Context, search string) (ListResult[User], error)
	ListVendors(ctx context.Context, search string) (ListResult[Vendor], error)
	ListPayments(ctx context.Context, search string) (ListResult[Payment], error)

	// Refresh re-fetches one resource into its snapshot, for background
	// cache warming.
	Refresh(ctx context.Context, resource Resource) error

	// SnapshotAge reports how old a resource snapshot is.
	SnapshotAge(resource Resource, now time.Time) (time.Duration, bool)
}

// DefaultService implements Service over the upstream client with one
// snapshot store per resource.
type DefaultService struct {
	upstream Upstream
	notifier notify.Notifier
	log      zerolog.Logger

	events   *snapshot.Store[Event]
	tickets  *snapshot.Store[Ticket]
	users    *snapshot.Store[User]
	vendors  *snapshot.Store[Vendor]
	payments *snapshot.Store[Payment]
}

// NewService creates the default catalog service.
func NewService(upstream Upstream, notifier notify.Notifier, log zerolog.Logger) *DefaultService {
	return &DefaultService{
		upstream: upstream,
		notifier: notifier,
		log:      log.With().Str("component", "catalog").Logger(),
		events:   snapshot.New[Event](),
		tickets:  snapshot.New[Ticket](),
		users:    snapshot.New[User](),
		vendors:  snapshot.New[Vendor](),
		payments: snapshot.New[Payment](),
	}
}

// ListEvents fetches events, falling back to the snapshot on failure.
func (s *DefaultService) ListEvents(ctx context.Context, search string) (ListResult[Event], error) {
	return listResource(ctx, s, ResourceEvents, search, s.upstream.ListEvents, s.events)
}

// ListTickets fetches tickets, falling back to the snapshot on failure.
func (s *DefaultService) ListTickets(ctx context.Context, search string) (ListResult[Ticket], error) {
	return listResource(ctx, s, ResourceTickets, search, s.upstream.ListTickets, s.tickets)
}

// ListUsers fetches users, falling back to the snapshot on failure.
func (s *DefaultService) ListUsers(ctx context.Context, search string) (ListResult[User], error) {
	return listResource(ctx, s, ResourceUsers, search, s.upstream.ListUsers, s.users)
}

// ListVendors fetches vendors, falling back to the snapshot on failure.
func (s *DefaultService) ListVendors(ctx context.Context, search string) (ListResult[Vendor], error) {
	return listResource(ctx, s, ResourceVendors, search, s.upstream.ListVendors, s.vendors)
}

// ListPayments fetches payments, falling back to the snapshot on failure.
func (s *DefaultService) ListPayments(ctx context.Context, search string) (ListResult[Payment], error) {
	return listResource(ctx, s, ResourcePayments, search, s.upstream.ListPayments, s.payments)
}

// Refresh re-fetches the unfiltered collection for one resource.
func (s *DefaultService) Refresh(ctx context.Context, resource Resource) error {
	var err error
	switch resource {
	case ResourceEvents:
		_, err = s.ListEvents(ctx, "")
	case ResourceTickets:
		_, err = s.ListTickets(ctx, "")
	case ResourceUsers:
		_, err = s.ListUsers(ctx, "")
	case ResourceVendors:
		_, err = s.ListVendors(ctx, "")
	case ResourcePayments:
		_, err = s.ListPayments(ctx, "")
	default:
		err = errors.New("unknown resource: " + resource.String())
	}
	return err
}

// SnapshotAge reports how old a resource snapshot is.
func (s *DefaultService) SnapshotAge(resource Resource, now time.Time) (time.Duration, bool) {
	switch resource {
	case ResourceEvents:
		return s.events.Age(now)
	case ResourceTickets:
		return s.tickets.Age(now)
	case ResourceUsers:
		return s.users.Age(now)
	case ResourceVendors:
		return s.vendors.Age(now)
	case ResourcePayments:
		return s.payments.Age(now)
	}
	return 0, false
}

// listResource runs one fetch: live result when the upstream succeeds (the
// unfiltered set also refreshes the snapshot), snapshot fallback for
// unfiltered fetches when it fails, an error when neither is available.
// Every failed outcome raises a notification.
func listResource[T any](
	ctx context.Context,
	s *DefaultService,
	resource Resource,
	search string,
	fetch func(context.Context, string) ([]T, Outcome),
	snap *snapshot.Store[T],
) (ListResult[T], error) {
	records, outcome := fetch(ctx, search)
	if outcome.OK {
		// Filtered sets must not poison the cache.
		if search == "" {
			snap.Put(records)
		}
		return ListResult[T]{Records: records}, nil
	}

	s.notifier.Notify(ctx, notify.LevelError, outcome.Message)
	s.log.Warn().
		Str("resource", resource.String()).
		Str("error", outcome.Err).
		Msg(outcome.Message)

	if search == "" {
		if cached, capturedAt, ok := snap.Get(); ok {
			return ListResult[T]{
				Records:    cached,
				Stale:      true,
				CapturedAt: capturedAt,
				Message:    outcome.Message,
			}, nil
		}
	}

	return ListResult[T]{}, errors.New(outcome.Message)
}

// Ensure interface compliance.
var _ Service = (*DefaultService)(nil)
