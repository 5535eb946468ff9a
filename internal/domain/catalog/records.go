// Package catalog defines the five admin entities and the listing logic that
// feeds the dashboard tables.
package catalog

import "time"

// Resource names one admin entity collection.
type Resource string

const (
	ResourceEvents   Resource = "events"
	ResourceTickets  Resource = "tickets"
	ResourceUsers    Resource = "users"
	ResourceVendors  Resource = "vendors"
	ResourcePayments Resource = "payments"
)

// String returns the string representation of the resource.
func (r Resource) String() string {
	return string(r)
}

// Resources lists every admin entity collection.
func Resources() []Resource {
	return []Resource{
		ResourceEvents,
		ResourceTickets,
		ResourceUsers,
		ResourceVendors,
		ResourcePayments,
	}
}

// Event is a bookable event listed in the admin dashboard.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Venue       string    `json:"venue"`
	City        string    `json:"city"`
	StartsAt    time.Time `json:"starts_at"`
	Capacity    int       `json:"capacity"`
	TicketsSold int       `json:"tickets_sold"`
	Status      string    `json:"status"`
}

// Ticket is a single issued ticket.
type Ticket struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	EventName  string    `json:"event_name"`
	Tier       string    `json:"tier"`
	PriceMinor int64     `json:"price_minor"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	IssuedAt   time.Time `json:"issued_at"`
}

// User is a platform account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Vendor is an event organizer selling through the platform.
type Vendor struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	EventCount   int       `json:"event_count"`
	Verified     bool      `json:"verified"`
	JoinedAt     time.Time `json:"joined_at"`
}

// Payment is a settled or pending charge.
type Payment struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	UserID      string    `json:"user_id"`
	AmountMinor int64     `json:"amount_minor"`
	Currency    string    `json:"currency"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	PaidAt      time.Time `json:"paid_at"`
}
