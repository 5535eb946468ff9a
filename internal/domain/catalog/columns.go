package catalog

import (
	"fmt"
	"time"

	"tickethub/admin-api/internal/tabular"
)

// EventColumns returns the column set for the events table.
func EventColumns() []tabular.Column[Event] {
	return []tabular.Column[Event]{
		{Key: "id", Label: "ID", Sortable: true, Value: func(e Event) any { return e.ID }},
		{Key: "name", Label: "Name", Sortable: true, Value: func(e Event) any { return e.Name }},
		{Key: "venue", Label: "Venue", Sortable: true, Value: func(e Event) any { return e.Venue }},
		{Key: "city", Label: "City", Sortable: true, Value: func(e Event) any { return e.City }},
		{
			Key: "starts_at", Label: "Starts", Sortable: true,
			Value:  func(e Event) any { return e.StartsAt },
			Render: func(e Event) string { return e.StartsAt.Format("2006-01-02 15:04") },
		},
		{
			Key: "sold", Label: "Sold", Sortable: true,
			Value:  func(e Event) any { return e.TicketsSold },
			Render: func(e Event) string { return fmt.Sprintf("%d/%d", e.TicketsSold, e.Capacity) },
		},
		{Key: "status", Label: "Status", Sortable: false, Value: func(e Event) any { return e.Status }},
	}
}

// TicketColumns returns the column set for the tickets table.
func TicketColumns() []tabular.Column[Ticket] {
	return []tabular.Column[Ticket]{
		{Key: "id", Label: "ID", Sortable: true, Value: func(t Ticket) any { return t.ID }},
		{Key: "event_name", Label: "Event", Sortable: true, Value: func(t Ticket) any { return t.EventName }},
		{Key: "tier", Label: "Tier", Sortable: true, Value: func(t Ticket) any { return t.Tier }},
		{
			Key: "price", Label: "Price", Sortable: true,
			Value:  func(t Ticket) any { return t.PriceMinor },
			Render: func(t Ticket) string { return FormatMinor(t.PriceMinor, t.Currency) },
		},
		{Key: "status", Label: "Status", Sortable: false, Value: func(t Ticket) any { return t.Status }},
		{
			Key: "issued_at", Label: "Issued", Sortable: true,
			Value:  func(t Ticket) any { return t.IssuedAt },
			Render: func(t Ticket) string { return t.IssuedAt.Format("2006-01-02 15:04") },
		},
	}
}

// UserColumns returns the column set for the users table.
func UserColumns() []tabular.Column[User] {
	return []tabular.Column[User]{
		{Key: "id", Label: "ID", Sortable: true, Value: func(u User) any { return u.ID }},
		{Key: "name", Label: "Name", Sortable: true, Value: func(u User) any { return u.Name }},
		{Key: "email", Label: "Email", Sortable: true, Value: func(u User) any { return u.Email }},
		{Key: "role", Label: "Role", Sortable: true, Value: func(u User) any { return u.Role }},
		{
			Key: "active", Label: "Active", Sortable: true,
			Value:  func(u User) any { return u.Active },
			Render: func(u User) string { return yesNo(u.Active) },
		},
		{
			Key: "registered_at", Label: "Registered", Sortable: true,
			Value:  func(u User) any { return u.RegisteredAt },
			Render: func(u User) string { return u.RegisteredAt.Format(time.DateOnly) },
		},
	}
}

// VendorColumns returns the column set for the vendors table.
func VendorColumns() []tabular.Column[Vendor] {
	return []tabular.Column[Vendor]{
		{Key: "id", Label: "ID", Sortable: true, Value: func(v Vendor) any { return v.ID }},
		{Key: "name", Label: "Name", Sortable: true, Value: func(v Vendor) any { return v.Name }},
		{Key: "contact_email", Label: "Contact", Sortable: true, Value: func(v Vendor) any { return v.ContactEmail }},
		{Key: "event_count", Label: "Events", Sortable: true, Value: func(v Vendor) any { return v.EventCount }},
		{
			Key: "verified", Label: "Verified", Sortable: true,
			Value:  func(v Vendor) any { return v.Verified },
			Render: func(v Vendor) string { return yesNo(v.Verified) },
		},
		{
			Key: "joined_at", Label: "Joined", Sortable: true,
			Value:  func(v Vendor) any { return v.JoinedAt },
			Render: func(v Vendor) string { return v.JoinedAt.Format(time.DateOnly) },
		},
	}
}

// PaymentColumns returns the column set for the payments table.
func PaymentColumns() []tabular.Column[Payment] {
	return []tabular.Column[Payment]{
		{Key: "id", Label: "ID", Sortable: true, Value: func(p Payment) any { return p.ID }},
		{Key: "reference", Label: "Reference", Sortable: true, Value: func(p Payment) any { return p.Reference }},
		{
			Key: "amount", Label: "Amount", Sortable: true,
			Value:  func(p Payment) any { return p.AmountMinor },
			Render: func(p Payment) string { return FormatMinor(p.AmountMinor, p.Currency) },
		},
		{Key: "method", Label: "Method", Sortable: true, Value: func(p Payment) any { return p.Method }},
		{Key: "status", Label: "Status", Sortable: false, Value: func(p Payment) any { return p.Status }},
		{
			Key: "paid_at", Label: "Paid", Sortable: true,
			Value:  func(p Payment) any { return p.PaidAt },
			Render: func(p Payment) string { return p.PaidAt.Format("2006-01-02 15:04") },
		},
	}
}

// FormatMinor renders an integer minor-unit amount as "12.50 EUR".
func FormatMinor(amount int64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if currency == "" {
		return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, currency)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
