package pagination

import (
	"encoding/json"
	"iter"
	"slices"
)

// Page is a numbered window of items drawn from a larger source, together with
// the metadata describing that window.
//
// A Page is immutable: it owns a private copy of its items and exposes no
// mutators, so it is safe to share and to keep after the source changes.
//
// Type parameter T is the item type being paginated.
type Page[T any] struct {
	number         int
	itemsPerPage   int
	totalItemCount int
	items          []T
}

// NewPage creates a Page from an already-windowed item set and a known total.
// No validation is performed; use ToPage for the validating variant.
// The items slice is copied.
func NewPage[T any](number, itemsPerPage, totalItemCount int, items []T) Page[T] {
	return Page[T]{
		number:         number,
		itemsPerPage:   itemsPerPage,
		totalItemCount: totalItemCount,
		items:          slices.Clone(items),
	}
}

// Number returns the 1-based page number that was requested.
func (p Page[T]) Number() int {
	return p.number
}

// ItemsPerPage returns the requested page size.
func (p Page[T]) ItemsPerPage() int {
	return p.itemsPerPage
}

// ItemCount returns the number of items actually contained in the page.
func (p Page[T]) ItemCount() int {
	return len(p.items)
}

// TotalItemCount returns the number of items in the whole source.
func (p Page[T]) TotalItemCount() int {
	return p.totalItemCount
}

// All returns an iterator over the page items in order.
// The iterator can be ranged over any number of times.
func (p Page[T]) All() iter.Seq[T] {
	return slices.Values(p.items)
}

// Items returns a copy of the page items.
func (p Page[T]) Items() []T {
	return slices.Clone(p.items)
}

// IsEmpty reports whether the page holds no items.
func (p Page[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// Offset returns the zero-based position of the first item of this page
// within the source.
func (p Page[T]) Offset() int {
	return NewParameter(p.number, p.itemsPerPage).Window().Offset
}

// TotalPages returns the number of pages needed to hold every item of the source.
func (p Page[T]) TotalPages() int {
	if p.itemsPerPage < 1 || p.totalItemCount <= 0 {
		return 0
	}
	return (p.totalItemCount + p.itemsPerPage - 1) / p.itemsPerPage
}

// HasNextPage reports whether the source holds items after this page.
func (p Page[T]) HasNextPage() bool {
	return p.number < p.TotalPages()
}

// HasPreviousPage reports whether a page before this one exists.
func (p Page[T]) HasPreviousPage() bool {
	return p.number > 1
}

type pageJSON[T any] struct {
	Number         int `json:"number"`
	ItemsPerPage   int `json:"itemsPerPage"`
	ItemCount      int `json:"itemCount"`
	TotalItemCount int `json:"totalItemCount"`
	TotalPages     int `json:"totalPages"`
	Items          []T `json:"items"`
}

// MarshalJSON encodes the page as an API envelope. Items is always an array.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	items := p.items
	if items == nil {
		items = []T{}
	}

	return json.Marshal(pageJSON[T]{
		Number:         p.number,
		ItemsPerPage:   p.itemsPerPage,
		ItemCount:      len(items),
		TotalItemCount: p.totalItemCount,
		TotalPages:     p.TotalPages(),
		Items:          items,
	})
}
