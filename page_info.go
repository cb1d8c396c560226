package pagination

// NewPageInfo returns PageInfo describing p. Cursors are offset cursors:
// StartCursor points at the first page and EndCursor at the first item of the
// last page, so both can be passed back as PageArgs.After.
func NewPageInfo[T any](p Page[T]) PageInfo {
	count := p.TotalItemCount()
	endOffset := 0
	if pages := p.TotalPages(); pages > 0 {
		endOffset = (pages - 1) * p.ItemsPerPage()
	}
	hasNext := p.HasNextPage()
	hasPrevious := p.HasPreviousPage()

	return PageInfo{
		TotalCount:      func() (*int, error) { return &count, nil },
		StartCursor:     func() (*string, error) { return EncodeOffsetCursor(0), nil },
		EndCursor:       func() (*string, error) { return EncodeOffsetCursor(endOffset), nil },
		HasNextPage:     func() (bool, error) { return hasNext, nil },
		HasPreviousPage: func() (bool, error) { return hasPrevious, nil },
	}
}

// NewEmptyPageInfo returns a empty instance of PageInfo. Useful for when working on a new page to be able to fullfil PageInfo requirements
func NewEmptyPageInfo() *PageInfo {
	return &PageInfo{
		TotalCount:      func() (*int, error) { return nil, nil },
		StartCursor:     func() (*string, error) { return nil, nil },
		EndCursor:       func() (*string, error) { return nil, nil },
		HasNextPage:     func() (bool, error) { return false, nil },
		HasPreviousPage: func() (bool, error) { return false, nil },
	}
}
