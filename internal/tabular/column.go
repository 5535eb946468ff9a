// Package tabular implements a generic client-side table: stable sorting,
// fixed-size pagination, and a search hook that delegates filtering to the
// data source. It is agnostic to the record type and never returns errors;
// out-of-range input is clamped rather than rejected.
package tabular

import (
	"fmt"
	"strconv"
	"time"
)

// Column describes how one column of a view is labelled, sorted, and rendered.
type Column[T any] struct {
	// Key uniquely identifies the column within a column set.
	Key string

	// Label is the human-readable header.
	Label string

	// Sortable marks the column as a valid SetSort target.
	Sortable bool

	// Value extracts the raw value used for sorting and, absent a custom
	// Render, for the default cell text.
	Value func(T) any

	// Render overrides the default cell text for this column.
	Render func(T) string
}

// cell produces the display text for one record in this column.
func (c Column[T]) cell(record T) string {
	if c.Render != nil {
		return c.Render(record)
	}
	if c.Value == nil {
		return ""
	}
	return formatValue(c.Value(record))
}

// formatValue renders a raw column value as cell text. Unknown types fall
// back to fmt.Sprint.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
