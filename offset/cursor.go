package offset

import pagination "github.com/nrfta/pagination-go"

// EncodeCursor encodes an item offset as a base64 string of "cursor:offset:NUMBER".
func EncodeCursor(offset int) *string {
	return pagination.EncodeOffsetCursor(offset)
}

// DecodeCursor extracts the offset from a cursor produced by EncodeCursor.
// It defaults to 0 if it cannot decode or has any error.
func DecodeCursor(input *string) int {
	return pagination.DecodeOffsetCursor(input)
}
