package pagination

import "math"

// Parameter groups the page number and page size of a pagination request.
// It carries no invariants of its own; the paginate functions validate it on use.
type Parameter struct {
	PageNumber   int `json:"pageNumber" form:"page"`
	ItemsPerPage int `json:"itemsPerPage" form:"per_page"`
}

// NewParameter creates a Parameter.
func NewParameter(pageNumber, itemsPerPage int) Parameter {
	return Parameter{PageNumber: pageNumber, ItemsPerPage: itemsPerPage}
}

// Window is the offset/limit slice of a source that makes up one page.
type Window struct {
	// Offset is the number of items to skip.
	Offset int

	// Limit is the maximum number of items to take after skipping.
	Limit int
}

// Window computes the offset/limit window for the parameter.
// Callers are expected to have validated the parameter first. If the offset
// does not fit in an int the window starts at math.MaxInt, which every source
// treats as past its end.
func (p Parameter) Window() Window {
	if p.PageNumber < 1 || p.ItemsPerPage < 1 {
		return Window{Limit: max(p.ItemsPerPage, 0)}
	}

	pagesBefore := p.PageNumber - 1
	if pagesBefore > math.MaxInt/p.ItemsPerPage {
		return Window{Offset: math.MaxInt, Limit: p.ItemsPerPage}
	}

	return Window{Offset: pagesBefore * p.ItemsPerPage, Limit: p.ItemsPerPage}
}
