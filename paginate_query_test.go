package pagination_test

import (
	"bytes"
	"context"
	"errors"
	"slices"

	"github.com/rs/zerolog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	pagination "github.com/nrfta/pagination-go"
)

// recordingSource is an in-memory Queryable that records the calls it receives.
type recordingSource struct {
	items    []int
	calls    []string
	windows  []pagination.Window
	countErr error
	fetchErr error

	// afterCount runs once Count has returned its result.
	afterCount func()
}

func (s *recordingSource) Count(ctx context.Context) (int64, error) {
	s.calls = append(s.calls, "count")
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.countErr != nil {
		return 0, s.countErr
	}
	if s.afterCount != nil {
		s.afterCount()
	}
	return int64(len(s.items)), nil
}

func (s *recordingSource) Fetch(ctx context.Context, w pagination.Window) ([]int, error) {
	s.calls = append(s.calls, "fetch")
	s.windows = append(s.windows, w)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	start := min(w.Offset, len(s.items))
	end := min(start+w.Limit, len(s.items))
	return s.items[start:end], nil
}

var _ = Describe("PaginateQuery", func() {
	var (
		ctx    context.Context
		source *recordingSource
	)

	BeforeEach(func() {
		ctx = context.Background()
		source = &recordingSource{items: intRange(1, 10)}
	})

	DescribeTable("pages of 1..10 with 3 items per page",
		func(number int, expected []int) {
			page, err := pagination.PaginateQuery(ctx, source, number, 3)

			Expect(err).ToNot(HaveOccurred())
			Expect(page.Number()).To(Equal(number))
			Expect(page.ItemsPerPage()).To(Equal(3))
			Expect(page.TotalItemCount()).To(Equal(10))
			Expect(page.ItemCount()).To(Equal(len(expected)))
			if len(expected) == 0 {
				Expect(page.Items()).To(BeEmpty())
			} else {
				Expect(page.Items()).To(Equal(expected))
			}
		},
		Entry("initial page", 1, []int{1, 2, 3}),
		Entry("inner page", 2, []int{4, 5, 6}),
		Entry("last incomplete page", 4, []int{10}),
		Entry("page past the end", 5, []int{}),
	)

	It("counts first and then fetches the page window", func() {
		_, err := pagination.PaginateQuery(ctx, source, 3, 4)

		Expect(err).ToNot(HaveOccurred())
		Expect(source.calls).To(Equal([]string{"count", "fetch"}))
		Expect(source.windows).To(Equal([]pagination.Window{{Offset: 8, Limit: 4}}))
	})

	It("produces the same pages as Paginate over the same items", func() {
		for perPage := 1; perPage <= 4; perPage++ {
			for number := 1; number <= 12; number++ {
				expected, err := pagination.Paginate(pagination.FromSlice(source.items), number, perPage)
				Expect(err).ToNot(HaveOccurred())

				actual, err := pagination.PaginateQuery(ctx, source, number, perPage)
				Expect(err).ToNot(HaveOccurred())

				Expect(actual.ItemCount()).To(Equal(expected.ItemCount()))
				Expect(actual.TotalItemCount()).To(Equal(expected.TotalItemCount()))
				Expect(slices.Equal(actual.Items(), expected.Items())).To(BeTrue(),
					"perPage=%d number=%d", perPage, number)
			}
		}
	})

	It("does not share storage with the slice returned by the source", func() {
		page, err := pagination.PaginateQuery(ctx, source, 1, 3)
		Expect(err).ToNot(HaveOccurred())

		source.items[0] = 100

		Expect(page.Items()).To(Equal([]int{1, 2, 3}))
	})

	Describe("Validation", func() {
		It("rejects a nil source", func() {
			_, err := pagination.PaginateQuery[int](ctx, nil, 1, 10)

			expectInvalidArgument(err, pagination.ArgItems, "")
		})

		It("rejects a nil pointer source", func() {
			var missing *recordingSource

			_, err := pagination.PaginateQuery[int](ctx, missing, 1, 10)

			expectInvalidArgument(err, pagination.ArgItems, "Items must not be nil.")
		})

		It("rejects query funcs without a count or fetch function", func() {
			_, err := pagination.PaginateQuery[int](ctx, pagination.QueryFuncs[int]{}, 1, 10)
			expectInvalidArgument(err, pagination.ArgItems, "")

			onlyCount := pagination.QueryFuncs[int]{
				CountFunc: func(context.Context) (int64, error) { return 0, nil },
			}
			_, err = pagination.PaginateQuery[int](ctx, onlyCount, 1, 10)
			expectInvalidArgument(err, pagination.ArgItems, "")

			onlyFetch := pagination.QueryFuncs[int]{
				FetchFunc: func(context.Context, pagination.Window) ([]int, error) { return nil, nil },
			}
			_, err = pagination.PaginateQuery[int](ctx, onlyFetch, 1, 10)
			expectInvalidArgument(err, pagination.ArgItems, "")
		})

		It("rejects a page number smaller than one without querying", func() {
			_, err := pagination.PaginateQuery(ctx, source, 0, 10)

			expectInvalidArgument(err, pagination.ArgPageNumber, "Page number must be 1 or greater.")
			Expect(source.calls).To(BeEmpty())
		})

		It("rejects items per page smaller than one without querying", func() {
			_, err := pagination.PaginateQuery(ctx, source, 1, 0)

			expectInvalidArgument(err, pagination.ArgItemsPerPage, "Items per page must be 1 or greater.")
			Expect(source.calls).To(BeEmpty())
		})

		It("validates before looking at the context", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := pagination.PaginateQuery(cancelled, source, 0, 10)

			expectInvalidArgument(err, pagination.ArgPageNumber, "")
		})
	})

	Describe("Source failures", func() {
		It("returns count errors unchanged", func() {
			countErr := errors.New("connection refused")
			source.countErr = countErr

			_, err := pagination.PaginateQuery(ctx, source, 1, 10)

			Expect(err).To(BeIdenticalTo(countErr))
			Expect(source.calls).To(Equal([]string{"count"}))
		})

		It("returns fetch errors unchanged", func() {
			fetchErr := errors.New("connection reset")
			source.fetchErr = fetchErr

			_, err := pagination.PaginateQuery(ctx, source, 1, 10)

			Expect(err).To(BeIdenticalTo(fetchErr))
			Expect(source.calls).To(Equal([]string{"count", "fetch"}))
		})
	})

	Describe("Cancellation", func() {
		It("does not query a source when the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := pagination.PaginateQuery(cancelled, source, 1, 10)

			Expect(err).To(MatchError(context.Canceled))
			Expect(source.calls).To(BeEmpty())
		})

		It("aborts without fetching when cancelled between count and fetch", func() {
			cancellable, cancel := context.WithCancel(ctx)
			defer cancel()
			source.afterCount = cancel

			page, err := pagination.PaginateQuery(cancellable, source, 1, 10)

			Expect(err).To(MatchError(context.Canceled))
			Expect(source.calls).To(Equal([]string{"count"}))
			Expect(page.Items()).To(BeEmpty())
		})

		It("forwards the context to the source", func() {
			type ctxKey struct{}
			keyed := context.WithValue(ctx, ctxKey{}, "request-1")

			var seen []any
			funcs := pagination.QueryFuncs[int]{
				CountFunc: func(ctx context.Context) (int64, error) {
					seen = append(seen, ctx.Value(ctxKey{}))
					return 1, nil
				},
				FetchFunc: func(ctx context.Context, w pagination.Window) ([]int, error) {
					seen = append(seen, ctx.Value(ctxKey{}))
					return []int{1}, nil
				},
			}

			_, err := pagination.PaginateQuery(keyed, funcs, 1, 10)

			Expect(err).ToNot(HaveOccurred())
			Expect(seen).To(Equal([]any{"request-1", "request-1"}))
		})
	})

	Describe("Logging", func() {
		It("logs fetched pages to the context logger", func() {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

			_, err := pagination.PaginateQuery(logger.WithContext(ctx), source, 2, 3)

			Expect(err).ToNot(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring(`"message":"pagination: page fetched"`))
			Expect(buf.String()).To(ContainSubstring(`"page_number":2`))
			Expect(buf.String()).To(ContainSubstring(`"total_item_count":10`))
		})

		It("logs source failures", func() {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)
			source.fetchErr = errors.New("boom")

			_, err := pagination.PaginateQuery(logger.WithContext(ctx), source, 1, 3)

			Expect(err).To(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring(`"level":"error"`))
			Expect(buf.String()).To(ContainSubstring(`"error":"boom"`))
		})
	})
})

var _ = Describe("PaginateQueryParameter", func() {
	It("unpacks the parameter", func() {
		source := pagination.AsQueryable(pagination.FromSlice(intRange(1, 10)))

		page, err := pagination.PaginateQueryParameter(context.Background(), source, pagination.NewParameter(4, 3))

		Expect(err).ToNot(HaveOccurred())
		Expect(page.Items()).To(Equal([]int{10}))
		Expect(page.TotalItemCount()).To(Equal(10))
	})

	It("validates like PaginateQuery", func() {
		_, err := pagination.PaginateQueryParameter[int](context.Background(), nil, pagination.NewParameter(1, 3))
		expectInvalidArgument(err, pagination.ArgItems, "")

		source := pagination.AsQueryable(pagination.FromSlice(intRange(1, 10)))
		_, err = pagination.PaginateQueryParameter(context.Background(), source, pagination.NewParameter(1, -5))
		expectInvalidArgument(err, pagination.ArgItemsPerPage, "")
	})
})

var _ = Describe("AsQueryable", func() {
	It("returns nil for a nil pointer source", func() {
		var missing *pointerEnumerable
		Expect(pagination.AsQueryable[int](missing)).To(BeNil())
	})

	It("returns nil for a nil source", func() {
		Expect(pagination.AsQueryable[int](nil)).To(BeNil())
	})

	It("honours a cancelled context", func() {
		source := pagination.AsQueryable(pagination.FromSlice(intRange(1, 10)))
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := source.Count(cancelled)
		Expect(err).To(MatchError(context.Canceled))

		_, err = source.Fetch(cancelled, pagination.Window{Limit: 1})
		Expect(err).To(MatchError(context.Canceled))
	})
})
