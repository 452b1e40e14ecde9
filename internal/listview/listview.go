// Package listview implements the load/filter/search/sort/paginate pipeline
// shared by every listing screen, plus the in-place reconciliation applied
// after a mutation succeeds.
package listview

import (
	"sort"
	"strings"
)

// Engine derives the visible page of a cached collection. All filtering
// happens client-side over the full fetched set; the backend does no
// pagination.
type Engine[T any] struct {
	id         func(T) int
	searchText func(T) string
	pageSize   int

	items  []T
	query  string
	filter func(T) bool
	less   func(a, b T) bool
	page   int

	toggling    int
	hasToggling bool
}

func New[T any](id func(T) int, searchText func(T) string, pageSize int) *Engine[T] {
	return &Engine[T]{
		id:         id,
		searchText: searchText,
		pageSize:   pageSize,
		page:       1,
	}
}

// SetItems replaces the cached collection and returns to the first page.
func (e *Engine[T]) SetItems(items []T) {
	e.items = items
	e.page = 1
}

func (e *Engine[T]) Items() []T { return e.items }

// SetQuery updates the free-text search and resets the page.
func (e *Engine[T]) SetQuery(q string) {
	e.query = q
	e.page = 1
}

func (e *Engine[T]) Query() string { return e.query }

// SetFilter installs the partition predicate (status or category) and resets
// the page. A nil filter admits everything.
func (e *Engine[T]) SetFilter(f func(T) bool) {
	e.filter = f
	e.page = 1
}

// SetSort installs the comparator and resets the page. A nil comparator
// falls back to ascending identifier.
func (e *Engine[T]) SetSort(less func(a, b T) bool) {
	e.less = less
	e.page = 1
}

// Visible is the filtered, searched, sorted collection. The sort is stable,
// so equal keys keep their collection order.
func (e *Engine[T]) Visible() []T {
	q := strings.ToLower(strings.TrimSpace(e.query))

	out := make([]T, 0, len(e.items))
	for _, it := range e.items {
		if e.filter != nil && !e.filter(it) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.searchText(it)), q) {
			continue
		}
		out = append(out, it)
	}

	less := e.less
	if less == nil {
		less = func(a, b T) bool { return e.id(a) < e.id(b) }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (e *Engine[T]) VisibleCount() int { return len(e.Visible()) }

func (e *Engine[T]) TotalPages() int {
	n := e.VisibleCount()
	if n == 0 {
		return 0
	}
	return (n + e.pageSize - 1) / e.pageSize
}

func (e *Engine[T]) Page() int { return e.page }

// SetPage moves to the given 1-based page. Out-of-range requests are
// ignored; boundary controls are disabled rather than clamped.
func (e *Engine[T]) SetPage(p int) {
	if p >= 1 && p <= e.TotalPages() {
		e.page = p
	}
}

func (e *Engine[T]) NextPage() { e.SetPage(e.page + 1) }
func (e *Engine[T]) PrevPage() { e.SetPage(e.page - 1) }

func (e *Engine[T]) HasPrev() bool { return e.page > 1 }
func (e *Engine[T]) HasNext() bool { return e.page < e.TotalPages() }

// VisiblePage is the page-sized slice of Visible for the current page.
func (e *Engine[T]) VisiblePage() []T {
	visible := e.Visible()
	start := (e.page - 1) * e.pageSize
	if start >= len(visible) {
		return nil
	}
	end := start + e.pageSize
	if end > len(visible) {
		end = len(visible)
	}
	return visible[start:end]
}

// ReplaceByID swaps the single matching record in place, no refetch.
func (e *Engine[T]) ReplaceByID(id int, item T) {
	for i, it := range e.items {
		if e.id(it) == id {
			e.items[i] = item
			return
		}
	}
}

// RemoveByID drops the record and steps the page back by one when the
// removal empties the current page and it is not the first.
func (e *Engine[T]) RemoveByID(id int) {
	kept := e.items[:0]
	for _, it := range e.items {
		if e.id(it) != id {
			kept = append(kept, it)
		}
	}
	e.items = kept

	if e.page > 1 && (e.page-1)*e.pageSize >= e.VisibleCount() {
		e.page--
	}
}

// BeginToggle marks a status toggle as in flight for one row, so its control
// can be disabled. A single identifier is tracked, matching the one-row-at-
// a-time interaction of the screens.
func (e *Engine[T]) BeginToggle(id int) {
	e.toggling = id
	e.hasToggling = true
}

func (e *Engine[T]) EndToggle() {
	e.toggling = 0
	e.hasToggling = false
}

func (e *Engine[T]) TogglingID() (int, bool) { return e.toggling, e.hasToggling }

func (e *Engine[T]) IsToggling(id int) bool {
	return e.hasToggling && e.toggling == id
}
