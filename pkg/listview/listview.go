// Package listview provides pure helpers for list-page view state: text and
// field filtering, pagination, and a view-state holder that keeps filters and
// the current page consistent.
package listview

import "strings"

// Matcher reports whether an item matches a free-text query.
type Matcher[T any] func(item T, query string) bool

// FieldSelector extracts a filterable field value from an item.
type FieldSelector[T any] func(item T) string

// The zero value of Filters applies no filtering at all.
type Filters struct {
	// Search is a case-insensitive free-text query.
	Search string

	// Fields maps a field name to the exact value it must hold.
	// An empty value (or the literal "all") is treated as no filter.
	Fields map[string]string
}

// IsZero reports whether the filters select the whole collection.
func (f Filters) IsZero() bool {
	if strings.TrimSpace(f.Search) != "" {
		return false
	}
	for _, v := range f.Fields {
		if !passthroughValue(v) {
			return false
		}
	}

	return true
}

func passthroughValue(v string) bool {
	return v == "" || strings.EqualFold(v, "all")
}

// Filter returns the items matching the filters. Field filters are matched
// exactly (case-insensitive) through the given selectors; the search query is
// delegated to the matcher. A nil matcher disables text search. The result is
// always a non-nil slice in the original order.
func Filter[T any](items []T, filters Filters, selectors map[string]FieldSelector[T], match Matcher[T]) []T {
	out := make([]T, 0, len(items))

	for _, item := range items {
		if !fieldsMatch(item, filters.Fields, selectors) {
			continue
		}
		if q := strings.TrimSpace(filters.Search); q != "" {
			if match == nil || !match(item, q) {
				continue
			}
		}
		out = append(out, item)
	}

	return out
}

func fieldsMatch[T any](item T, fields map[string]string, selectors map[string]FieldSelector[T]) bool {
	for name, want := range fields {
		if passthroughValue(want) {
			continue
		}
		selector, ok := selectors[name]
		if !ok {
			return false
		}
		if !strings.EqualFold(selector(item), want) {
			return false
		}
	}

	return true
}

// Page is one window of a filtered collection.
type Page[T any] struct {
	Items      []T
	Number     int // 1-based
	Size       int
	TotalItems int
	TotalPages int
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// HasPrev reports whether an earlier page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// Paginate returns the requested 1-based page. Out-of-range page numbers are
// clamped to the valid range; a non-positive size returns everything as a
// single page. Pages concatenate to the input exactly.
func Paginate[T any](items []T, page, size int) Page[T] {
	total := len(items)

	if size <= 0 {
		return Page[T]{
			Items:      append([]T(nil), items...),
			Number:     1,
			Size:       total,
			TotalItems: total,
			TotalPages: 1,
		}
	}

	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      append([]T(nil), items[start:end]...),
		Number:     page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// View holds the list-page state: the full collection, the active filters and
// the current page. Changing any filter resets the page to 1.
type View[T any] struct {
	items     []T
	filters   Filters
	page      int
	pageSize  int
	selectors map[string]FieldSelector[T]
	match     Matcher[T]
}

// NewView creates a view over the collection with the given page size.
func NewView[T any](items []T, pageSize int, selectors map[string]FieldSelector[T], match Matcher[T]) *View[T] {
	return &View[T]{
		items:     items,
		page:      1,
		pageSize:  pageSize,
		selectors: selectors,
		match:     match,
	}
}

// SetItems replaces the backing collection, keeping filters but resetting the
// page.
func (v *View[T]) SetItems(items []T) {
	v.items = items
	v.page = 1
}

// SetSearch updates the free-text query and resets the page.
func (v *View[T]) SetSearch(query string) {
	if v.filters.Search == query {
		return
	}
	v.filters.Search = query
	v.page = 1
}

// SetField updates a field filter and resets the page.
func (v *View[T]) SetField(name, value string) {
	if v.filters.Fields == nil {
		v.filters.Fields = make(map[string]string)
	}
	if v.filters.Fields[name] == value {
		return
	}
	v.filters.Fields[name] = value
	v.page = 1
}

// SetPage moves to the given page without touching the filters.
func (v *View[T]) SetPage(page int) {
	v.page = page
}

// Page computes the current window of the filtered collection.
func (v *View[T]) Page() Page[T] {
	filtered := Filter(v.items, v.filters, v.selectors, v.match)

	return Paginate(filtered, v.page, v.pageSize)
}
