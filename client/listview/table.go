// Package listview holds the pure state logic behind the admin data tables:
// client-side search and pagination over a fetched list, reconciliation of
// the in-memory list after confirmed mutations, the modal form state machine,
// and the cascading school/session/course option filter.
package listview

import "strings"

// Table manages one entity list fetched from the API. Search and pagination
// operate entirely over the in-memory copy; mutations are applied only after
// the server has confirmed them.
type Table[T any] struct {
	// ID extracts the row identifier used for update/delete reconciliation.
	ID func(T) int64
	// SearchFields extracts the display fields the search box matches against.
	SearchFields func(T) []string

	items    []T
	query    string
	page     int
	pageSize int
}

// NewTable creates a table with the given row accessors and page size.
func NewTable[T any](id func(T) int64, searchFields func(T) []string, pageSize int) *Table[T] {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Table[T]{
		ID:           id,
		SearchFields: searchFields,
		page:         1,
		pageSize:     pageSize,
	}
}

// SetItems replaces the full in-memory list, e.g. after the initial fetch or
// an explicit refresh.
func (t *Table[T]) SetItems(items []T) {
	t.items = items
	t.clampPage()
}

// Items returns the unfiltered in-memory list.
func (t *Table[T]) Items() []T {
	return t.items
}

// SetQuery updates the search text. Any query change resets to page 1.
func (t *Table[T]) SetQuery(query string) {
	if query == t.query {
		return
	}
	t.query = query
	t.page = 1
}

// Query returns the active search text.
func (t *Table[T]) Query() string {
	return t.query
}

// Filtered returns the rows matching the active query, in list order. The
// match is a case-insensitive substring test across the row's search fields.
func (t *Table[T]) Filtered() []T {
	if t.query == "" {
		return t.items
	}
	needle := strings.ToLower(t.query)
	var matched []T
	for _, item := range t.items {
		for _, field := range t.SearchFields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// Page returns the current 1-based page number.
func (t *Table[T]) Page() int {
	return t.page
}

// PageSize returns the active page size.
func (t *Table[T]) PageSize() int {
	return t.pageSize
}

// TotalPages returns the page count over the filtered list, never below 1.
func (t *Table[T]) TotalPages() int {
	count := len(t.Filtered())
	pages := (count + t.pageSize - 1) / t.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// SetPageSize changes the page size and re-clamps the current page.
func (t *Table[T]) SetPageSize(size int) {
	if size < 1 {
		return
	}
	t.pageSize = size
	t.clampPage()
}

// SetPage moves to the given page, clamped to the valid range.
func (t *Table[T]) SetPage(page int) {
	t.page = page
	t.clampPage()
}

// NextPage advances one page if one exists.
func (t *Table[T]) NextPage() {
	t.SetPage(t.page + 1)
}

// PrevPage moves back one page if one exists.
func (t *Table[T]) PrevPage() {
	t.SetPage(t.page - 1)
}

// VisibleRows returns the filtered rows on the current page.
func (t *Table[T]) VisibleRows() []T {
	filtered := t.Filtered()
	start := (t.page - 1) * t.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + t.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// ApplyCreate prepends a server-confirmed new row without a refetch.
func (t *Table[T]) ApplyCreate(item T) {
	t.items = append([]T{item}, t.items...)
	t.clampPage()
}

// ApplyUpdate replaces the row with the same ID in place, preserving list
// order. Unknown IDs are ignored.
func (t *Table[T]) ApplyUpdate(item T) {
	id := t.ID(item)
	for i := range t.items {
		if t.ID(t.items[i]) == id {
			t.items[i] = item
			return
		}
	}
}

// ApplyDelete removes the row with the given ID and re-clamps the page so
// the view never shows an empty page while earlier pages have rows.
func (t *Table[T]) ApplyDelete(id int64) {
	for i := range t.items {
		if t.ID(t.items[i]) == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			break
		}
	}
	t.clampPage()
}

// clampPage keeps the page within [1, TotalPages()].
func (t *Table[T]) clampPage() {
	if max := t.TotalPages(); t.page > max {
		t.page = max
	}
	if t.page < 1 {
		t.page = 1
	}
}
