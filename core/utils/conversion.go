package utils

import (
	"fmt"
	"strconv"
)

// ToString converts table cell values to their display form. Nil values
// (and nil typed pointers, like an unlimited warehouse capacity) render as
// the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case *int:
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
