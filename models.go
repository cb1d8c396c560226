package pagination

// PageInfo contains Relay-style metadata about a paginated result set.
// It uses function fields to enable lazy evaluation of pagination metadata,
// which suits GraphQL resolvers that only compute the fields a client selected.
//
// All functions return both a value and an error so implementations backed by
// further queries can report failures.
type PageInfo struct {
	TotalCount      func() (*int, error)
	HasPreviousPage func() (bool, error)
	HasNextPage     func() (bool, error)
	StartCursor     func() (*string, error)
	EndCursor       func() (*string, error)
}
