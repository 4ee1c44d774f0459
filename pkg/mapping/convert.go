package mapping

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateFormat is the canonical textual form for date values.
const dateFormat = "01/02/2006"

// Stringify converts a resolved value into the textual form written into
// document fields. Sequences join their converted elements with ", ";
// nil becomes the empty string.
func Stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case time.Time:
		return value.Format(dateFormat)
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, Stringify(item))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(value, ", ")
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}
