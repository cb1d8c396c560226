package pagination

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// EncodeOffsetCursor encodes an item offset as a base64 string of "cursor:offset:NUMBER".
func EncodeOffsetCursor(offset int) *string {
	data := "cursor:offset:" + strconv.Itoa(offset)
	encoded := base64.URLEncoding.EncodeToString([]byte(data))
	return &encoded
}

// DecodeOffsetCursor extracts the offset from a cursor produced by EncodeOffsetCursor.
// It defaults to 0 if the cursor is nil, cannot be decoded or holds a negative offset.
func DecodeOffsetCursor(input *string) int {
	if input == nil {
		return 0
	}

	decoded, err := base64.URLEncoding.DecodeString(*input)
	if err != nil {
		return 0
	}

	data := strings.Split(string(decoded), ":")
	if len(data) != 3 || data[0] != "cursor" || data[1] != "offset" {
		return 0
	}

	offset, err := strconv.Atoi(data[2])
	if err != nil || offset < 0 {
		return 0
	}

	return offset
}
