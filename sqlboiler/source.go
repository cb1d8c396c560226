// Package sqlboiler adapts SQLBoiler queries to pagination.Queryable.
//
// The adapter is ORM-specific but knows nothing about page numbers: it turns a
// pagination.Window into query mods and runs the caller's count and query
// functions with them. Filter mods are applied to both queries so the count
// and the page agree; the ordering is applied to the page query only.
//
// Example usage:
//
//	source := sqlboiler.NewSource(
//	    func(ctx context.Context, mods ...qm.QueryMod) ([]*models.User, error) {
//	        return models.Users(mods...).All(ctx, db)
//	    },
//	    func(ctx context.Context, mods ...qm.QueryMod) (int64, error) {
//	        return models.Users(mods...).Count(ctx, db)
//	    },
//	    "created_at DESC, id",
//	    qm.Where("is_active = ?", true),
//	)
//
//	page, err := pagination.PaginateQuery(ctx, source, 2, 25)
package sqlboiler

import (
	"context"
	"slices"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	pagination "github.com/nrfta/pagination-go"
)

// QueryFunc executes a SQLBoiler query and returns results.
//
// Type parameter T is the SQLBoiler model type (e.g., *models.User).
type QueryFunc[T any] func(ctx context.Context, mods ...qm.QueryMod) ([]T, error)

// CountFunc executes a SQLBoiler count query.
type CountFunc func(ctx context.Context, mods ...qm.QueryMod) (int64, error)

// Source implements pagination.Queryable[T] for SQLBoiler queries.
type Source[T any] struct {
	queryFunc QueryFunc[T]
	countFunc CountFunc
	orderBy   string
	filters   []qm.QueryMod
}

// NewSource creates a SQLBoiler source.
//
// Parameters:
//   - queryFunc: Function that executes SQLBoiler queries with query mods
//   - countFunc: Function that counts records with query mods
//   - orderBy: ORDER BY clause for the page query, empty for none
//   - filters: Mods (WHERE, JOIN, ...) applied to both queries
//
// The ordering should be deterministic (end with a unique column), otherwise
// rows can move between pages.
func NewSource[T any](
	queryFunc QueryFunc[T],
	countFunc CountFunc,
	orderBy string,
	filters ...qm.QueryMod,
) *Source[T] {
	return &Source[T]{
		queryFunc: queryFunc,
		countFunc: countFunc,
		orderBy:   orderBy,
		filters:   filters,
	}
}

// Count returns the number of rows matching the filters.
func (s *Source[T]) Count(ctx context.Context) (int64, error) {
	return s.countFunc(ctx, slices.Clone(s.filters)...)
}

// Fetch returns the rows of one window: filters, then ordering, then the
// offset and limit.
func (s *Source[T]) Fetch(ctx context.Context, w pagination.Window) ([]T, error) {
	mods := slices.Clone(s.filters)
	if s.orderBy != "" {
		mods = append(mods, qm.OrderBy(s.orderBy))
	}
	mods = append(mods, WindowToQueryMods(w)...)
	return s.queryFunc(ctx, mods...)
}

// WindowToQueryMods converts a window into SQLBoiler query mods.
//
// The conversion follows these rules:
//   - Offset → qm.Offset(n), omitted when 0
//   - Limit → qm.Limit(n), omitted when not positive
func WindowToQueryMods(w pagination.Window) []qm.QueryMod {
	mods := []qm.QueryMod{}

	if w.Offset > 0 {
		mods = append(mods, qm.Offset(w.Offset))
	}

	if w.Limit > 0 {
		mods = append(mods, qm.Limit(w.Limit))
	}

	return mods
}
