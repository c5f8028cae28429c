// Package page slices an ordered result set into fixed-size pages.
package page

// DefaultSize is the number of listings on a catalog page.
const DefaultSize = 12

// Result is one page of an ordered result set.
type Result[T any] struct {
	Items       []T
	TotalCount  int
	TotalPages  int
	CurrentPage int
	PageSize    int
}

// Paginate returns page requested of items. The page number is clamped to
// [1, TotalPages]; an empty set is page 1 of 0. size <= 0 uses DefaultSize.
func Paginate[T any](items []T, size, requested int) Result[T] {
	if size <= 0 {
		size = DefaultSize
	}
	total := len(items)
	pages := (total + size - 1) / size

	current := min(max(requested, 1), max(pages, 1))

	start := min((current-1)*size, total)
	end := min(start+size, total)

	window := items[start:end:end]
	if window == nil {
		window = []T{}
	}

	return Result[T]{
		Items:       window,
		TotalCount:  total,
		TotalPages:  pages,
		CurrentPage: current,
		PageSize:    size,
	}
}

// HasPrev reports whether a page precedes the current one.
func (r Result[T]) HasPrev() bool { return r.CurrentPage > 1 }

// HasNext reports whether a page follows the current one.
func (r Result[T]) HasNext() bool { return r.CurrentPage < r.TotalPages }
