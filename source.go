package pagination

import (
	"context"
	"iter"
	"slices"
)

type sliceSource[T any] struct {
	items []T
}

// FromSlice returns an Enumerable backed by items. The slice is not copied;
// pages built from it hold their own copies.
func FromSlice[T any](items []T) Enumerable[T] {
	return sliceSource[T]{items: items}
}

func (s sliceSource[T]) Count() int {
	return len(s.items)
}

func (s sliceSource[T]) Window(w Window) iter.Seq[T] {
	start := min(max(w.Offset, 0), len(s.items))
	end := start + min(max(w.Limit, 0), len(s.items)-start)
	return slices.Values(s.items[start:end])
}

type seqSource[T any] struct {
	seq iter.Seq[T]
}

// FromSeq returns an Enumerable backed by a lazy sequence. The sequence must
// be finite and restartable: Count and Window each range over it once.
// A nil seq yields a nil Enumerable.
func FromSeq[T any](seq iter.Seq[T]) Enumerable[T] {
	if seq == nil {
		return nil
	}
	return seqSource[T]{seq: seq}
}

func (s seqSource[T]) Count() int {
	n := 0
	for range s.seq {
		n++
	}
	return n
}

func (s seqSource[T]) Window(w Window) iter.Seq[T] {
	return func(yield func(T) bool) {
		if w.Limit <= 0 {
			return
		}

		skipped, taken := 0, 0
		for item := range s.seq {
			if skipped < w.Offset {
				skipped++
				continue
			}
			if !yield(item) {
				return
			}
			taken++
			if taken == w.Limit {
				return
			}
		}
	}
}

// CountFunc counts the items of a deferred source.
type CountFunc func(ctx context.Context) (int64, error)

// FetchFunc materializes one window of a deferred source.
type FetchFunc[T any] func(ctx context.Context, w Window) ([]T, error)

// QueryFuncs adapts a pair of functions to the Queryable interface.
// The paginate functions reject a QueryFuncs with either function unset.
//
// Example:
//
//	source := pagination.QueryFuncs[*models.User]{
//	    CountFunc: func(ctx context.Context) (int64, error) {
//	        return models.Users().Count(ctx, db)
//	    },
//	    FetchFunc: func(ctx context.Context, w pagination.Window) ([]*models.User, error) {
//	        return models.Users(qm.OrderBy("id"), qm.Offset(w.Offset), qm.Limit(w.Limit)).All(ctx, db)
//	    },
//	}
type QueryFuncs[T any] struct {
	CountFunc CountFunc
	FetchFunc FetchFunc[T]
}

func (q QueryFuncs[T]) absent() bool {
	return q.CountFunc == nil || q.FetchFunc == nil
}

// Count calls CountFunc.
func (q QueryFuncs[T]) Count(ctx context.Context) (int64, error) {
	return q.CountFunc(ctx)
}

// Fetch calls FetchFunc.
func (q QueryFuncs[T]) Fetch(ctx context.Context, w Window) ([]T, error) {
	return q.FetchFunc(ctx, w)
}

type enumerableQuery[T any] struct {
	source Enumerable[T]
}

// AsQueryable exposes an in-memory source through the deferred interface.
// Each call checks ctx before doing any work. A nil source yields a nil Queryable.
func AsQueryable[T any](source Enumerable[T]) Queryable[T] {
	if !present(source) {
		return nil
	}
	return enumerableQuery[T]{source: source}
}

func (q enumerableQuery[T]) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(q.source.Count()), nil
}

func (q enumerableQuery[T]) Fetch(ctx context.Context, w Window) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Collect(q.source.Window(w)), nil
}
