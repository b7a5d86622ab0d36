package util

import (
	"math"
	"strconv"
	"strings"
)

// Slugify Derive a URL-safe slug from a title.
// Lower-case, spaces become hyphens, apostrophes and commas are dropped,
// every remaining rune outside [a-z0-9-] is stripped.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ",", "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SlugWithSuffix Disambiguate a colliding slug with a unix timestamp suffix
func SlugWithSuffix(slug string, unix int64) string {
	return slug + "-" + strconv.FormatInt(unix, 10)
}

// ParseID Parse a decimal ID from a path segment, 0 on any bad input
// including values past the int64 range.
func ParseID(s string) int64 {
	if s == "" || len(s) > 19 {
		return 0
	}
	var id int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		d := int64(c - '0')
		if id > (math.MaxInt64-d)/10 {
			return 0
		}
		id = id*10 + d
	}
	return id
}

// DefaultIfEmpty Return default value if string is empty
func DefaultIfEmpty(s, defaultVal string) string {
	if s == "" {
		return defaultVal
	}
	return s
}

// ClampLimit Bound a page size into [1, max], fall back to def
func ClampLimit(s string, def, max int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// ParseSkip Parse a non-negative offset, 0 on bad input
func ParseSkip(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
