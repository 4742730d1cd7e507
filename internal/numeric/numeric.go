// internal/numeric/numeric.go
package numeric

import (
	"fmt"
	"regexp"
	"strconv"
)

// pattern matches the first contiguous decimal run in a free-form string:
// "4.3 out of 5" -> "4.3", "₹1,099" -> "1", "64%" -> "64". The same pattern
// feeds both the Go extractor and the SQL cast expression so the two cannot
// drift apart.
const pattern = `([0-9]+\.?[0-9]*)`

var numberRe = regexp.MustCompile(pattern)

// Extract returns the leading numeric run of s as a float64. ok is false when
// s is empty or contains no digits; a failed extraction is never coerced to
// zero and never an error.
func Extract(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	match := numberRe.FindString(s)
	if match == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// SQLCast builds the Postgres expression that performs the same extraction
// server-side, yielding NULL for values with no numeric run.
func SQLCast(column string) string {
	return fmt.Sprintf("CAST(NULLIF(SUBSTRING(%s FROM '%s'), '') AS DECIMAL)", column, pattern)
}
