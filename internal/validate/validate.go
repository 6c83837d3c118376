package validate

import (
	"strconv"
	"strings"
)

// ID parses a numeric resource id (product/category/subcategory/loja).
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// IDList parses a comma-separated id list, silently dropping malformed
// entries the way the backend contract does.
func IDList(s string) []int64 {
	parts := strings.Split(s, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		if id, ok := ID(p); ok {
			out = append(out, id)
		}
	}
	return out
}

// Page clamps a 1-indexed page number.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Limit clamps a page size to a sane window; zero means "use the default".
func Limit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// Search trims and bounds a free-text search term.
func Search(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// Flag reports whether a query value asks for a boolean filter.
func Flag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
