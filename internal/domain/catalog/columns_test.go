package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tickethub/admin-api/internal/domain/catalog"
	"tickethub/admin-api/internal/tabular"
)

func TestFormatMinor(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		currency string
		want     string
	}{
		{name: "whole units", amount: 1250, currency: "EUR", want: "12.50 EUR"},
		{name: "sub-unit padding", amount: 905, currency: "USD", want: "9.05 USD"},
		{name: "zero", amount: 0, currency: "GBP", want: "0.00 GBP"},
		{name: "negative", amount: -150, currency: "EUR", want: "-1.50 EUR"},
		{name: "no currency", amount: 4200, currency: "", want: "42.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.FormatMinor(tt.amount, tt.currency))
		})
	}
}

func TestEventColumns_RenderAndSortability(t *testing.T) {
	event := catalog.Event{
		ID:          "e1",
		Name:        "Jazz Night",
		StartsAt:    time.Date(2026, 9, 12, 20, 30, 0, 0, time.UTC),
		Capacity:    500,
		TicketsSold: 342,
		Status:      "on_sale",
	}

	view := tabular.New(catalog.EventColumns(), 10)
	view.SetRecords([]catalog.Event{event})

	rows := view.Rows()
	assert.Equal(t, "2026-09-12 20:30", rows[0][4])
	assert.Equal(t, "342/500", rows[0][5])

	// Status columns are deliberately not sortable.
	for _, col := range view.Columns() {
		if col.Key == "status" {
			assert.False(t, col.Sortable)
		}
	}
}

func TestPaymentColumns_MoneyRendering(t *testing.T) {
	payment := catalog.Payment{
		ID:          "p1",
		AmountMinor: 7599,
		Currency:    "EUR",
		PaidAt:      time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}

	view := tabular.New(catalog.PaymentColumns(), 10)
	view.SetRecords([]catalog.Payment{payment})

	rows := view.Rows()
	assert.Equal(t, "75.99 EUR", rows[0][2])
}
