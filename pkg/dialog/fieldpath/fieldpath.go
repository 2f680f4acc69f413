// Package fieldpath resolves and mutates dotted field paths inside the
// nested map structure used by draft and listing data. Paths are split on
// "." and walked segment by segment; Set creates intermediate maps as
// needed. Reflection is intentionally avoided.
package fieldpath

import "strings"

// Get resolves a dotted path against data. The second return is false when
// any segment is missing or a non-map value is hit before the last segment.
func Get(data map[string]interface{}, path string) (interface{}, bool) {
	if data == nil || path == "" {
		return nil, false
	}

	segments := strings.Split(path, ".")
	current := data
	for i, seg := range segments {
		value, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return value, true
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// GetString resolves a path and renders the value as a trimmed string.
// Non-string scalars are not converted; only string values qualify.
func GetString(data map[string]interface{}, path string) string {
	value, ok := Get(data, path)
	if !ok {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// IsBlank reports whether the value at path is missing, nil, or a string
// that is empty after trimming. Numeric zero is NOT blank - an answered
// numeric field stays answered.
func IsBlank(data map[string]interface{}, path string) bool {
	value, ok := Get(data, path)
	if !ok || value == nil {
		return true
	}
	if s, isStr := value.(string); isStr {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// Set writes value at the dotted path, creating intermediate maps for
// missing segments. Existing non-map intermediates are replaced.
func Set(data map[string]interface{}, path string, value interface{}) {
	if data == nil || path == "" {
		return
	}

	segments := strings.Split(path, ".")
	current := data
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[seg] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}
