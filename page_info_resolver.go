package pagination

import (
	"context"
)

// PageInfoResolver resolves PageInfo fields for gqlgen-style GraphQL servers.
// A nil PageInfo, or a nil field function, resolves like NewEmptyPageInfo.
type PageInfoResolver interface {
	HasPreviousPage(ctx context.Context, pageInfo *PageInfo) (bool, error)
	HasNextPage(ctx context.Context, pageInfo *PageInfo) (bool, error)
	TotalCount(ctx context.Context, pageInfo *PageInfo) (*int, error)
	StartCursor(ctx context.Context, pageInfo *PageInfo) (*string, error)
	EndCursor(ctx context.Context, pageInfo *PageInfo) (*string, error)
}

type pageInfoResolver struct{}

// NewPageInfoResolver returns the resolver for PageInfo
func NewPageInfoResolver() PageInfoResolver {
	return &pageInfoResolver{}
}

func orEmpty(pageInfo *PageInfo) *PageInfo {
	if pageInfo == nil {
		return NewEmptyPageInfo()
	}
	return pageInfo
}

func (r *pageInfoResolver) TotalCount(ctx context.Context, pageInfo *PageInfo) (*int, error) {
	if fn := orEmpty(pageInfo).TotalCount; fn != nil {
		return fn()
	}
	return nil, nil
}

func (r *pageInfoResolver) HasPreviousPage(ctx context.Context, pageInfo *PageInfo) (bool, error) {
	if fn := orEmpty(pageInfo).HasPreviousPage; fn != nil {
		return fn()
	}
	return false, nil
}

func (r *pageInfoResolver) HasNextPage(ctx context.Context, pageInfo *PageInfo) (bool, error) {
	if fn := orEmpty(pageInfo).HasNextPage; fn != nil {
		return fn()
	}
	return false, nil
}

func (r *pageInfoResolver) StartCursor(ctx context.Context, pageInfo *PageInfo) (*string, error) {
	if fn := orEmpty(pageInfo).StartCursor; fn != nil {
		return fn()
	}
	return nil, nil
}

func (r *pageInfoResolver) EndCursor(ctx context.Context, pageInfo *PageInfo) (*string, error) {
	if fn := orEmpty(pageInfo).EndCursor; fn != nil {
		return fn()
	}
	return nil, nil
}
