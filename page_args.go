package pagination

import "fmt"

const (
	// DefaultPageSize is the default number of items per page when not specified.
	DefaultPageSize = 50

	// DefaultMaxPageSize is the default maximum page size allowed.
	// This protects against resource exhaustion from unreasonably large page requests.
	DefaultMaxPageSize = 1000
)

// PageConfig holds pagination configuration options.
// Use NewPageConfig() to create a config with sensible defaults,
// then customize using the With* methods.
//
// Example:
//
//	config := pagination.NewPageConfig().WithMaxSize(500)
//	param := config.Parameter(args)
type PageConfig struct {
	// DefaultSize is the page size used when not specified in PageArgs.
	DefaultSize int

	// MaxSize is the maximum allowed page size. Requests exceeding this
	// will be capped to MaxSize (not rejected).
	MaxSize int
}

// NewPageConfig creates a PageConfig with sensible defaults:
// - DefaultSize: 50
// - MaxSize: 1000
func NewPageConfig() *PageConfig {
	return &PageConfig{
		DefaultSize: DefaultPageSize,
		MaxSize:     DefaultMaxPageSize,
	}
}

// WithDefaultSize sets the default page size and returns the config for chaining.
func (c *PageConfig) WithDefaultSize(size int) *PageConfig {
	if size > 0 {
		c.DefaultSize = size
	}
	return c
}

// WithMaxSize sets the maximum page size and returns the config for chaining.
func (c *PageConfig) WithMaxSize(size int) *PageConfig {
	if size > 0 {
		c.MaxSize = size
	}
	return c
}

// EffectiveLimit returns the page size to use, applying defaults and caps.
// - If args is nil or PerPage is nil/zero, returns DefaultSize
// - If PerPage exceeds MaxSize, returns MaxSize
// - Otherwise returns PerPage
func (c *PageConfig) EffectiveLimit(args *PageArgs) int {
	if c == nil {
		c = NewPageConfig()
	}

	defaultSize := c.DefaultSize
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}

	maxSize := c.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPageSize
	}

	if args == nil || args.PerPage == nil || *args.PerPage <= 0 {
		return defaultSize
	}

	if *args.PerPage > maxSize {
		return maxSize
	}

	return *args.PerPage
}

// Parameter resolves page arguments into a Parameter.
//
// The page size comes from EffectiveLimit. The page number is taken from
// args.Page when set, otherwise derived from the After offset cursor as the
// page that starts right after it, otherwise 1. An explicit non-positive page
// number is kept as is so the paginate functions can reject it.
func (c *PageConfig) Parameter(args *PageArgs) Parameter {
	size := c.EffectiveLimit(args)

	pageNumber := 1
	switch {
	case args == nil:
	case args.Page != nil:
		pageNumber = *args.Page
	case args.After != nil:
		pageNumber = DecodeOffsetCursor(args.After)/size + 1
	}

	return NewParameter(pageNumber, size)
}

// Validate checks if the page size exceeds MaxSize and returns an error if so.
// Unlike EffectiveLimit which caps silently, Validate returns an error for
// explicit rejection of invalid requests.
func (c *PageConfig) Validate(args *PageArgs) error {
	if c == nil {
		c = NewPageConfig()
	}

	if args == nil || args.PerPage == nil {
		return nil
	}

	maxSize := c.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPageSize
	}

	if *args.PerPage > maxSize {
		return &PageSizeError{
			Requested: *args.PerPage,
			Maximum:   maxSize,
		}
	}

	return nil
}

// PageArgs represents pagination query parameters as received from an API.
// Page and PerPage select a numbered page. After accepts an offset cursor
// (as found in PageInfo and Edge cursors) for Relay-style clients.
type PageArgs struct {
	Page    *int    `json:"page,omitempty"`
	PerPage *int    `json:"perPage,omitempty"`
	After   *string `json:"after,omitempty"`
}

// GetPage returns the requested page number.
func (pa *PageArgs) GetPage() *int {
	return pa.Page
}

// GetPerPage returns the requested page size.
func (pa *PageArgs) GetPerPage() *int {
	return pa.PerPage
}

// GetAfter returns the cursor position for pagination.
func (pa *PageArgs) GetAfter() *string {
	return pa.After
}

// Validate validates the PageArgs using DefaultMaxPageSize (1000).
// This is a convenience method that uses the default PageConfig.
//
// For custom limits, use ValidateWith:
//
//	config := pagination.NewPageConfig().WithMaxSize(500)
//	if err := args.ValidateWith(config); err != nil {
//	    return nil, err
//	}
func (pa *PageArgs) Validate() error {
	return NewPageConfig().Validate(pa)
}

// ValidateWith validates the PageArgs using a custom PageConfig.
// This allows specifying custom maximum page sizes per endpoint.
func (pa *PageArgs) ValidateWith(config *PageConfig) error {
	return config.Validate(pa)
}

// PageSizeError is returned when the requested page size exceeds the maximum allowed.
type PageSizeError struct {
	Requested int
	Maximum   int
}

func (e *PageSizeError) Error() string {
	return fmt.Sprintf("requested page size %d exceeds maximum allowed page size of %d",
		e.Requested, e.Maximum)
}

// PaginateOption configures page size limits for a pagination request.
//
// Example:
//
//	paginator := offset.New(source,
//	    pagination.WithMaxSize(100),
//	    pagination.WithDefaultSize(25),
//	)
type PaginateOption func(*paginateConfig)

type paginateConfig struct {
	maxSize     int
	defaultSize int
}

// WithMaxSize sets the maximum page size.
// If the requested size exceeds this, it will be capped to maxSize.
func WithMaxSize(size int) PaginateOption {
	return func(c *paginateConfig) {
		if size > 0 {
			c.maxSize = size
		}
	}
}

// WithDefaultSize sets the default page size.
// Used when args.PerPage is nil or zero.
func WithDefaultSize(size int) PaginateOption {
	return func(c *paginateConfig) {
		if size > 0 {
			c.defaultSize = size
		}
	}
}

// ApplyPaginateOptions applies functional options and returns a PageConfig.
func ApplyPaginateOptions(opts ...PaginateOption) *PageConfig {
	cfg := &paginateConfig{
		maxSize:     DefaultMaxPageSize,
		defaultSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &PageConfig{
		MaxSize:     cfg.maxSize,
		DefaultSize: cfg.defaultSize,
	}
}
