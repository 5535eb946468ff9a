package tabular

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

// Direction represents ordering direction for a sorted column.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	return string(d)
}

// SortState captures which column a view is ordered by. A zero Column means
// the record set keeps its source order.
type SortState struct {
	Column    string
	Direction Direction
}

// compareValues orders two raw column values with native comparison: strings
// byte-wise, numbers numerically, times chronologically, bools false-first.
// Mismatched or unknown types compare by their printed form.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return 0
		}
		if a == nil {
			return -1
		}
		return 1
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			if av == bv {
				return 0
			}
			if !av {
				return -1
			}
			return 1
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case time.Duration:
		if bv, ok := b.(time.Duration); ok {
			return cmp.Compare(av, bv)
		}
	}

	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return cmp.Compare(fa, fb)
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
