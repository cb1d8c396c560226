// Package pgxquery adapts raw SQL queries executed with pgx to pagination.Queryable.
//
// The query is any SELECT statement, including its WHERE and ORDER BY clauses.
// Count wraps it in a sub-select; Fetch appends LIMIT and OFFSET as positional
// parameters after the query's own arguments.
//
// Example usage:
//
//	source := pgxquery.NewSource(pool,
//	    `SELECT id, email, name FROM users WHERE is_active = $1 ORDER BY created_at DESC, id`,
//	    pgx.RowToStructByName[User],
//	    true,
//	)
//
//	page, err := pagination.PaginateQuery(ctx, source, 1, 25)
package pgxquery

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	pagination "github.com/nrfta/pagination-go"
)

// Querier is the subset of pgx used by Source.
// It is satisfied by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Source implements pagination.Queryable[T] for a SQL query run through pgx.
type Source[T any] struct {
	db    Querier
	query string
	args  []any
	scan  pgx.RowToFunc[T]
}

// NewSource creates a pgx source.
//
// Parameters:
//   - db: Connection, pool or transaction to run the queries on
//   - query: SELECT statement without LIMIT or OFFSET, using $1..$n placeholders
//   - scan: Row mapper, e.g. pgx.RowToStructByName[T]
//   - args: Values for the query placeholders
func NewSource[T any](db Querier, query string, scan pgx.RowToFunc[T], args ...any) *Source[T] {
	return &Source[T]{
		db:    db,
		query: strings.TrimRight(strings.TrimSpace(query), ";"),
		args:  args,
		scan:  scan,
	}
}

// CountSQL returns the statement used by Count.
// The query sits on its own lines so a trailing line comment stays closed.
func (s *Source[T]) CountSQL() string {
	return "SELECT count(*) FROM (\n" + s.query + "\n) AS paged"
}

// FetchSQL returns the statement used by Fetch. Its last two placeholders are
// the limit and the offset.
func (s *Source[T]) FetchSQL() string {
	n := len(s.args)
	return fmt.Sprintf("%s\nLIMIT $%d OFFSET $%d", s.query, n+1, n+2)
}

// Count returns the number of rows the query yields.
func (s *Source[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRow(ctx, s.CountSQL(), s.args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Fetch returns the rows of one window in query order.
func (s *Source[T]) Fetch(ctx context.Context, w pagination.Window) ([]T, error) {
	args := make([]any, 0, len(s.args)+2)
	args = append(args, s.args...)
	args = append(args, int64(w.Limit), int64(w.Offset))

	rows, err := s.db.Query(ctx, s.FetchSQL(), args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, s.scan)
}
