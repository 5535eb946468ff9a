package tabular

import "slices"

// DefaultPageSize is used when a view is constructed with a non-positive
// page size.
const DefaultPageSize = 10

// State reports what a renderer should show for the current view. Loading
// takes precedence over the empty state.
type State int

const (
	StateData State = iota
	StateEmpty
	StateLoading
)

// Field is one label/value pair of a card.
type Field struct {
	Label string
	Value string
}

// Card is the narrow-viewport rendering of a single record.
type Card struct {
	Fields []Field
}

// View holds the transient sort, page, and search state for one record set.
// Sorting always runs over the full set before the visible page is sliced,
// so the table and card layouts stay two projections of identical state.
type View[T any] struct {
	columns      []Column[T]
	records      []T
	sorted       []T
	sort         SortState
	currentPage  int
	perPage      int
	query        string
	onSearch     func(string)
	loading      bool
	emptyMessage string
}

// New constructs a view over an empty record set.
func New[T any](columns []Column[T], perPage int) *View[T] {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	return &View[T]{
		columns:     columns,
		currentPage: 1,
		perPage:     perPage,
		sort:        SortState{Direction: Ascending},
	}
}

// OnSearch registers the external search callback. The view never filters by
// text itself; the data source decides whether search means a refetch or a
// local refilter.
func (v *View[T]) OnSearch(fn func(query string)) {
	v.onSearch = fn
}

// SetEmptyMessage sets the text shown when the record set is empty.
func (v *View[T]) SetEmptyMessage(msg string) {
	v.emptyMessage = msg
}

// EmptyMessage returns the caller-supplied empty-state text.
func (v *View[T]) EmptyMessage() string {
	return v.emptyMessage
}

// SetRecords replaces the record set and resets sort and page state, matching
// the lifecycle of a search-driven reload.
func (v *View[T]) SetRecords(records []T) {
	v.records = records
	v.sort = SortState{Direction: Ascending}
	v.currentPage = 1
	v.resort()
}

// SetLoading toggles the busy indicator, which suppresses both data rows and
// the empty state.
func (v *View[T]) SetLoading(loading bool) {
	v.loading = loading
}

// SetSort orders the full record set by the given column. Selecting the
// current sort column flips the direction; selecting a new column resets it
// to ascending. Unknown and non-sortable keys are ignored.
func (v *View[T]) SetSort(key string) {
	col, ok := v.column(key)
	if !ok || !col.Sortable {
		return
	}

	if v.sort.Column == key {
		if v.sort.Direction == Ascending {
			v.sort.Direction = Descending
		} else {
			v.sort.Direction = Ascending
		}
	} else {
		v.sort = SortState{Column: key, Direction: Ascending}
	}
	v.resort()
}

// Sort returns the current sort state.
func (v *View[T]) Sort() SortState {
	return v.sort
}

// SetSearchQuery stores the query for controlled-input display, returns to
// the first page, and hands the text to the external search callback.
func (v *View[T]) SetSearchQuery(query string) {
	v.query = query
	v.currentPage = 1
	if v.onSearch != nil {
		v.onSearch(query)
	}
}

// Query returns the stored search text.
func (v *View[T]) Query() string {
	return v.query
}

// GoToPage navigates to page n, clamped to the valid range.
func (v *View[T]) GoToPage(n int) {
	v.currentPage = clampPage(n, v.TotalPages())
}

// Page returns the current page, starting at 1.
func (v *View[T]) Page() int {
	return v.currentPage
}

// PerPage returns the fixed page size.
func (v *View[T]) PerPage() int {
	return v.perPage
}

// Len returns the total record count.
func (v *View[T]) Len() int {
	return len(v.records)
}

// TotalPages returns ceil(recordCount / pageSize).
func (v *View[T]) TotalPages() int {
	return (len(v.records) + v.perPage - 1) / v.perPage
}

// HasNext reports whether a later page exists.
func (v *View[T]) HasNext() bool {
	return v.currentPage < v.TotalPages()
}

// HasPrev reports whether an earlier page exists.
func (v *View[T]) HasPrev() bool {
	return v.currentPage > 1
}

// State reports what should be rendered right now.
func (v *View[T]) State() State {
	if v.loading {
		return StateLoading
	}
	if len(v.records) == 0 {
		return StateEmpty
	}
	return StateData
}

// Sorted returns the full record set in sorted order, unpaged.
func (v *View[T]) Sorted() []T {
	return v.sorted
}

// Visible returns the slice of sorted records belonging to the current page.
func (v *View[T]) Visible() []T {
	start := (v.currentPage - 1) * v.perPage
	if start >= len(v.sorted) {
		return nil
	}
	end := min(start+v.perPage, len(v.sorted))
	return v.sorted[start:end]
}

// Columns returns the column descriptors in declaration order.
func (v *View[T]) Columns() []Column[T] {
	return v.columns
}

// Headers returns the column labels in declaration order.
func (v *View[T]) Headers() []string {
	headers := make([]string, len(v.columns))
	for i, col := range v.columns {
		headers[i] = col.Label
	}
	return headers
}

// Rows renders the visible page in the wide table layout, one cell per
// column.
func (v *View[T]) Rows() [][]string {
	visible := v.Visible()
	rows := make([][]string, len(visible))
	for i, record := range visible {
		cells := make([]string, len(v.columns))
		for j, col := range v.columns {
			cells[j] = col.cell(record)
		}
		rows[i] = cells
	}
	return rows
}

// Cards renders the visible page in the narrow card layout, label/value pairs
// per record. Cards and Rows always describe the same slice.
func (v *View[T]) Cards() []Card {
	visible := v.Visible()
	cards := make([]Card, len(visible))
	for i, record := range visible {
		fields := make([]Field, len(v.columns))
		for j, col := range v.columns {
			fields[j] = Field{Label: col.Label, Value: col.cell(record)}
		}
		cards[i] = Card{Fields: fields}
	}
	return cards
}

func (v *View[T]) column(key string) (Column[T], bool) {
	for _, col := range v.columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column[T]{}, false
}

// resort rebuilds the sorted slice from the full record set. The underlying
// sort is stable, so ties keep their relative order.
func (v *View[T]) resort() {
	v.sorted = slices.Clone(v.records)

	col, ok := v.column(v.sort.Column)
	if !ok || col.Value == nil {
		return
	}

	sign := 1
	if v.sort.Direction == Descending {
		sign = -1
	}
	slices.SortStableFunc(v.sorted, func(a, b T) int {
		return sign * compareValues(col.Value(a), col.Value(b))
	})
}

func clampPage(n, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if n < 1 {
		return 1
	}
	if n > totalPages {
		return totalPages
	}
	return n
}
