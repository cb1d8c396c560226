package pagination

import (
	"context"
	"iter"
)

// Paginator produces a page of results from API-facing page arguments.
//
// Type parameter T is the item type being paginated (e.g., User, Post, Organization).
//
// Example implementations:
//   - offset.Paginator: page-number pagination over a Queryable
type Paginator[T any] interface {
	// Paginate resolves the page arguments and returns the requested page.
	Paginate(ctx context.Context, args *PageArgs) (Page[T], error)
}

// Enumerable is a source held in memory. Counting and windowing it never
// blocks and never fails.
//
// Type parameter T is the item type of the source.
//
// Implementations:
//   - FromSlice: backed by a slice, O(1) count and window
//   - FromSeq: backed by a restartable iter.Seq, enumerated on every call
type Enumerable[T any] interface {
	// Count returns the number of items in the source.
	Count() int

	// Window skips w.Offset items and yields at most w.Limit of the remaining ones.
	// An offset past the end yields nothing.
	Window(w Window) iter.Seq[T]
}

// Queryable is a deferred source whose count and window are executed by an
// external engine (a database, a search index, a remote API). Both calls may
// perform I/O and must honour ctx.
//
// This interface allows the paginate functions to work with SQLBoiler, pgx,
// GORM, sqlc, or raw SQL without being tied to any of them.
//
// Type parameter T is the model type returned by the engine (e.g., *models.User).
//
// Example implementation:
//
//	type userSource struct{ db *sql.DB }
//
//	func (s userSource) Count(ctx context.Context) (int64, error) {
//	    return models.Users().Count(ctx, s.db)
//	}
//
//	func (s userSource) Fetch(ctx context.Context, w pagination.Window) ([]*models.User, error) {
//	    return models.Users(qm.OrderBy("id"), qm.Offset(w.Offset), qm.Limit(w.Limit)).All(ctx, s.db)
//	}
type Queryable[T any] interface {
	// Count returns the total number of items in the source.
	Count(ctx context.Context) (int64, error)

	// Fetch skips w.Offset items, takes at most w.Limit and materializes them in order.
	Fetch(ctx context.Context, w Window) ([]T, error)
}
