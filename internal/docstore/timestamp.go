package docstore

import (
	"fmt"
	"time"
)

// DateConvertible is the probe for timestamp shapes that expose a zero-arg
// conversion to a native time.
type DateConvertible interface {
	ToDate() time.Time
}

// FormatTimestamp converts the heterogeneous timestamp shapes a document
// store may hand back into a canonical ISO-8601 UTC string. It never fails:
// nil yields an empty string and unrecognized shapes are coerced to their
// plain string representation.
//
// Recognized shapes, probed in order:
//   - time.Time (and *time.Time): formatted directly
//   - DateConvertible: converted, then formatted
//   - field bags carrying a numeric "_seconds" or "seconds" entry: treated as
//     epoch seconds (multiplied up to the instant, not misread as millis)
//   - strings: returned unchanged
func FormatTimestamp(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return formatInstant(t)
	case *time.Time:
		if t == nil {
			return ""
		}
		return formatInstant(*t)
	case DateConvertible:
		return formatInstant(t.ToDate())
	case map[string]any:
		if secs, ok := epochSeconds(t); ok {
			return formatInstant(time.Unix(secs, 0))
		}
		return fmt.Sprint(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func epochSeconds(m map[string]any) (int64, bool) {
	for _, key := range []string{"_seconds", "seconds"} {
		v, ok := m[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case int64:
			return n, true
		case int:
			return int64(n), true
		case float64:
			return int64(n), true
		}
	}
	return 0, false
}
