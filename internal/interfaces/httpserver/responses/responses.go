package responses

import (
	"time"

	"tickethub/admin-api/internal/domain/catalog"
	"tickethub/admin-api/internal/tabular"
)

// Envelope is the canonical response shape returned by every endpoint, the
// same contract the booking client normalizes inbound responses to.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps a payload in a successful envelope.
func OK(data any, message string) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Fail builds a failed envelope.
func Fail(message, errDetail string) Envelope {
	if errDetail == "" {
		errDetail = message
	}
	return Envelope{Success: false, Message: message, Error: errDetail}
}

// ColumnHeader describes one column so the dashboard can label headers and
// wire sort clicks.
type ColumnHeader struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
}

// CardField is one label/value pair of the narrow card layout.
type CardField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CardPayload is one record rendered for narrow viewports.
type CardPayload struct {
	Fields []CardField `json:"fields"`
}

// Pagination carries the page metadata of a table payload.
type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Sort carries the applied sort state.
type Sort struct {
	Column    string `json:"column,omitempty"`
	Direction string `json:"direction"`
}

// TableData is one rendered tabular page. Rows and Cards are two layouts of
// the same sorted, paginated slice.
type TableData struct {
	Columns    []ColumnHeader `json:"columns"`
	Rows       [][]string     `json:"rows"`
	Cards      []CardPayload  `json:"cards"`
	Pagination Pagination     `json:"pagination"`
	Sort       Sort           `json:"sort"`
	Query      string         `json:"query,omitempty"`
	Stale      bool           `json:"stale,omitempty"`
	CapturedAt *time.Time     `json:"captured_at,omitempty"`
}

// TableFromView renders a view plus its fetch metadata into the wire payload.
func TableFromView[T any](view *tabular.View[T], result catalog.ListResult[T]) TableData {
	columns := view.Columns()
	headers := make([]ColumnHeader, len(columns))
	for i, col := range columns {
		headers[i] = ColumnHeader{Key: col.Key, Label: col.Label, Sortable: col.Sortable}
	}

	cards := make([]CardPayload, 0, len(columns))
	for _, card := range view.Cards() {
		fields := make([]CardField, len(card.Fields))
		for i, field := range card.Fields {
			fields[i] = CardField{Label: field.Label, Value: field.Value}
		}
		cards = append(cards, CardPayload{Fields: fields})
	}

	sortState := view.Sort()
	data := TableData{
		Columns: headers,
		Rows:    view.Rows(),
		Cards:   cards,
		Pagination: Pagination{
			Page:       view.Page(),
			PerPage:    view.PerPage(),
			TotalItems: view.Len(),
			TotalPages: view.TotalPages(),
			HasNext:    view.HasNext(),
			HasPrev:    view.HasPrev(),
		},
		Sort:  Sort{Column: sortState.Column, Direction: sortState.Direction.String()},
		Query: view.Query(),
		Stale: result.Stale,
	}
	if result.Stale {
		capturedAt := result.CapturedAt
		data.CapturedAt = &capturedAt
	}
	return data
}
