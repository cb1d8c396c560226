// Package offset provides page-number pagination over deferred sources.
//
// The Paginator resolves API page arguments (page number, page size or an
// offset cursor) against a PageConfig and delegates to
// pagination.PaginateQueryParameter. It works with any pagination.Queryable,
// such as the SQLBoiler and pgx adapters in this module.
//
// Example usage:
//
//	paginator := offset.New(source, pagination.WithMaxSize(100))
//	page, err := paginator.Paginate(ctx, args)
//	conn, err := offset.BuildConnection(page, toDomainUser)
package offset

import (
	"context"

	pagination "github.com/nrfta/pagination-go"
)

// Paginator paginates a deferred source by page number.
type Paginator[T any] struct {
	source pagination.Queryable[T]
	config *pagination.PageConfig
}

// New creates an offset paginator for source.
//
// The paginator automatically handles:
//   - Default page size of 50 records (WithDefaultSize to change)
//   - Capping page sizes at 1000 records (WithMaxSize to change)
//   - Resolving the page number from PageArgs.Page or PageArgs.After
func New[T any](source pagination.Queryable[T], opts ...pagination.PaginateOption) *Paginator[T] {
	return &Paginator[T]{
		source: source,
		config: pagination.ApplyPaginateOptions(opts...),
	}
}

// Paginate returns the page selected by args. A nil args selects the first page
// with the default size.
func (p *Paginator[T]) Paginate(ctx context.Context, args *pagination.PageArgs) (pagination.Page[T], error) {
	return pagination.PaginateQueryParameter(ctx, p.source, p.Parameter(args))
}

// Parameter returns the page number and size Paginate would use for args.
func (p *Paginator[T]) Parameter(args *pagination.PageArgs) pagination.Parameter {
	return p.config.Parameter(args)
}

// Config returns the page size configuration of the paginator.
func (p *Paginator[T]) Config() pagination.PageConfig {
	return *p.config
}

// BuildConnection creates a Relay connection from a page. Each edge cursor is
// the offset right after its item, so passing it back as PageArgs.After
// resumes pagination at the page that follows.
func BuildConnection[From any, To any](
	page pagination.Page[From],
	transform func(From) (To, error),
) (*pagination.Connection[To], error) {
	start := page.Offset()
	return pagination.BuildConnection(page,
		func(i int, _ From) string { return *EncodeCursor(start + i + 1) },
		transform,
	)
}
