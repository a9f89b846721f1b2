// Package values converts loosely typed configuration values.
//
// TOML decoding yields int64 and []any where callers set int and []int,
// so both config stores read through these helpers.
package values

// String returns v as a string, or "" if it is not one.
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Int returns v as an int, or 0 if it is not numeric.
func Int(v any) int {
	n, _ := toInt(v)
	return n
}

// Bool returns v as a bool, or false if it is not one.
func Bool(v any) bool {
	b, _ := v.(bool)
	return b
}

// StringSlice returns v as a string slice, skipping non-string items.
// Returns nil if v is not a slice.
func StringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		out := make([]string, len(s))
		copy(out, s)
		return out
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	default:
		return nil
	}
}

// IntSlice returns v as an int slice, skipping non-numeric items.
// Returns nil if v is not a slice.
func IntSlice(v any) []int {
	switch s := v.(type) {
	case []int:
		out := make([]int, len(s))
		copy(out, s)
		return out
	case []int64:
		out := make([]int, 0, len(s))
		for _, n := range s {
			out = append(out, int(n))
		}
		return out
	case []any:
		out := make([]int, 0, len(s))
		for _, item := range s {
			if n, ok := toInt(item); ok {
				out = append(out, n)
			}
		}
		return out
	default:
		return nil
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
