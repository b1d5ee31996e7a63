// Package listview implements search, status filtering and pagination over a
// fully loaded result set.
package listview

import "strings"

// DefaultPageSize is used when a non-positive size is requested.
const DefaultPageSize = 10

// Status filter values accepted from the UI.
const (
	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// NormalizeStatus maps unknown values to StatusAll.
func NormalizeStatus(raw string) string {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case StatusActive, StatusInactive:
		return s
	case "true":
		return StatusActive
	case "false":
		return StatusInactive
	default:
		return StatusAll
	}
}

// Criteria describes how to match items of type T.
type Criteria[T any] struct {
	Query  string
	Status string
	// Fields returns the searchable text of an item.
	Fields func(T) []string
	// Active reports the item's status; nil disables status filtering.
	Active func(T) bool
}

// Filter returns the items matching the query and status, preserving order.
func Filter[T any](items []T, c Criteria[T]) []T {
	query := strings.ToLower(strings.TrimSpace(c.Query))
	status := NormalizeStatus(c.Status)

	result := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesStatus(item, status, c.Active) {
			continue
		}
		if !matchesQuery(item, query, c.Fields) {
			continue
		}
		result = append(result, item)
	}
	return result
}

func matchesStatus[T any](item T, status string, active func(T) bool) bool {
	if active == nil || status == StatusAll {
		return true
	}
	return active(item) == (status == StatusActive)
}

func matchesQuery[T any](item T, query string, fields func(T) []string) bool {
	if query == "" || fields == nil {
		return true
	}
	for _, field := range fields(item) {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Page is one window of a filtered list.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	Total      int
	TotalPages int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// Prev returns the previous page number, never below 1.
func (p Page[T]) Prev() int { return ClampPage(p.Number-1, p.TotalPages) }

// Next returns the next page number, never above TotalPages.
func (p Page[T]) Next() int { return ClampPage(p.Number+1, p.TotalPages) }

// Numbers lists every page number for rendering pagination links.
func (p Page[T]) Numbers() []int {
	numbers := make([]int, p.TotalPages)
	for i := range numbers {
		numbers[i] = i + 1
	}
	return numbers
}

// TotalPages returns the page count for total items, at least 1.
func TotalPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// ClampPage keeps page within [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices items for the requested page after clamping it.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	pages := TotalPages(total, size)
	page = ClampPage(page, pages)

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		Size:       size,
		Total:      total,
		TotalPages: pages,
	}
}
