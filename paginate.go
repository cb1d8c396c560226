// Package pagination extracts numbered, fixed-size pages from larger sources.
//
// A page is the window of a source starting at offset (pageNumber-1)*itemsPerPage
// and holding at most itemsPerPage items, packaged with the page number, the page
// size, the number of items returned and the total item count of the source.
//
// Two kinds of sources are supported:
//   - Enumerable: held in memory, paginated synchronously by Paginate
//   - Queryable: executed by an external engine, paginated by PaginateQuery,
//     which forwards ctx to the engine
//
// Example usage:
//
//	page, err := pagination.Paginate(pagination.FromSlice(users), 2, 25)
//	if err != nil {
//	    return err
//	}
//	for user := range page.All() {
//	    ...
//	}
//
// Requesting a page past the last one is not an error: the page is empty and
// still reports the total item count.
package pagination

import (
	"context"
	"iter"
	"slices"

	"github.com/rs/zerolog"
)

// Paginate extracts page pageNumber of size itemsPerPage from an in-memory source.
//
// Arguments are validated before the source is touched, in this order:
// source, pageNumber, itemsPerPage. A nil source, including a nil pointer
// behind the interface, is rejected as ArgItems. Violations return an *InvalidArgumentError.
func Paginate[T any](source Enumerable[T], pageNumber, itemsPerPage int) (Page[T], error) {
	if err := validateArgs(present(source), pageNumber, itemsPerPage, 0); err != nil {
		return Page[T]{}, err
	}

	total := source.Count()
	window := NewParameter(pageNumber, itemsPerPage).Window()
	items := slices.Collect(source.Window(window))

	return Page[T]{
		number:         pageNumber,
		itemsPerPage:   itemsPerPage,
		totalItemCount: total,
		items:          items,
	}, nil
}

// PaginateParameter is Paginate with the page number and size taken from p.
func PaginateParameter[T any](source Enumerable[T], p Parameter) (Page[T], error) {
	return Paginate(source, p.PageNumber, p.ItemsPerPage)
}

// PaginateQuery extracts page pageNumber of size itemsPerPage from a deferred source.
//
// Validation happens synchronously and matches Paginate. The source is then
// asked for its count and afterwards for the page window; the two requests are
// never issued concurrently. ctx is forwarded to both. If ctx is done before
// either request, its error is returned and no page is produced. Errors from
// the source are returned as is.
//
// A zerolog logger attached to ctx (see zerolog.Logger.WithContext) receives
// debug events for each page and error events for source failures.
func PaginateQuery[T any](ctx context.Context, source Queryable[T], pageNumber, itemsPerPage int) (Page[T], error) {
	if err := validateArgs(present(source), pageNumber, itemsPerPage, 0); err != nil {
		return Page[T]{}, err
	}

	log := zerolog.Ctx(ctx)
	window := NewParameter(pageNumber, itemsPerPage).Window()

	if err := ctx.Err(); err != nil {
		return Page[T]{}, err
	}

	total, err := source.Count(ctx)
	if err != nil {
		log.Error().Err(err).Int("page_number", pageNumber).Msg("pagination: count failed")
		return Page[T]{}, err
	}

	if err := ctx.Err(); err != nil {
		return Page[T]{}, err
	}

	items, err := source.Fetch(ctx, window)
	if err != nil {
		log.Error().Err(err).
			Int("page_number", pageNumber).
			Int("offset", window.Offset).
			Int("limit", window.Limit).
			Msg("pagination: fetch failed")
		return Page[T]{}, err
	}

	log.Debug().
		Int("page_number", pageNumber).
		Int("items_per_page", itemsPerPage).
		Int("item_count", len(items)).
		Int64("total_item_count", total).
		Msg("pagination: page fetched")

	return NewPage(pageNumber, itemsPerPage, int(total), items), nil
}

// PaginateQueryParameter is PaginateQuery with the page number and size taken from p.
func PaginateQueryParameter[T any](ctx context.Context, source Queryable[T], p Parameter) (Page[T], error) {
	return PaginateQuery(ctx, source, p.PageNumber, p.ItemsPerPage)
}

// ToPage wraps an already-windowed item set and a known total in a Page.
// It is meant for storage layers that perform the windowing themselves.
//
// Arguments are validated in this order: items, pageNumber, itemsPerPage,
// totalItemCount. The items are not clipped to itemsPerPage.
func ToPage[T any](items iter.Seq[T], pageNumber, itemsPerPage, totalItemCount int) (Page[T], error) {
	if err := validateArgs(items != nil, pageNumber, itemsPerPage, totalItemCount); err != nil {
		return Page[T]{}, err
	}

	return Page[T]{
		number:         pageNumber,
		itemsPerPage:   itemsPerPage,
		totalItemCount: totalItemCount,
		items:          slices.Collect(items),
	}, nil
}
