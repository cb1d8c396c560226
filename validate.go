package pagination

import (
	"errors"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

// pageRequest mirrors the numeric pagination arguments so they can be checked
// with struct tags. Field order is the order errors are reported in.
type pageRequest struct {
	PageNumber     int `validate:"gte=1"`
	ItemsPerPage   int `validate:"gte=1"`
	TotalItemCount int `validate:"gte=0"`
}

var requestFields = map[string]*InvalidArgumentError{
	"PageNumber": {
		Argument: ArgPageNumber,
		Reason:   "Page number must be 1 or greater.",
	},
	"ItemsPerPage": {
		Argument: ArgItemsPerPage,
		Reason:   "Items per page must be 1 or greater.",
	},
	"TotalItemCount": {
		Argument: ArgTotalItemCount,
		Reason:   "Total item count must be 0 or greater.",
	},
}

var requestValidator = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// present reports whether source can be used. A nil interface counts as
// absent, and so does a nil pointer, func, map, slice or chan stored in it.
// Sources with an absent method decide for themselves.
func present(source any) bool {
	if source == nil {
		return false
	}

	switch v := reflect.ValueOf(source); v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return false
		}
	}

	if s, ok := source.(interface{ absent() bool }); ok {
		return !s.absent()
	}
	return true
}

// validateArgs performs the precondition checks shared by every call shape.
// hasSource reports whether the caller supplied a source. Call shapes that
// derive the total from the source pass a zero totalItemCount.
func validateArgs(hasSource bool, pageNumber, itemsPerPage, totalItemCount int) error {
	if !hasSource {
		return &InvalidArgumentError{
			Argument: ArgItems,
			Reason:   "Items must not be nil.",
		}
	}

	err := requestValidator().Struct(pageRequest{
		PageNumber:     pageNumber,
		ItemsPerPage:   itemsPerPage,
		TotalItemCount: totalItemCount,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if known, ok := requestFields[verrs[0].StructField()]; ok {
			return &InvalidArgumentError{Argument: known.Argument, Reason: known.Reason}
		}
	}

	return err
}
