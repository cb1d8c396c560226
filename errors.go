package pagination

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every *InvalidArgumentError via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Argument names reported by InvalidArgumentError.
const (
	ArgItems          = "items"
	ArgPageNumber     = "pageNumber"
	ArgItemsPerPage   = "itemsPerPage"
	ArgTotalItemCount = "totalItemCount"
)

// InvalidArgumentError is returned when a pagination argument violates its contract.
// It is the only error kind produced by this package; failures from a Queryable
// are returned to the caller unchanged.
type InvalidArgumentError struct {
	// Argument is the name of the offending argument (see the Arg* constants).
	Argument string

	// Reason is a human-readable description of the violated contract.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
