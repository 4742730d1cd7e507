// internal/ingest/normalize.go
package ingest

import (
	"regexp"
	"strings"
)

// Canonical column names, the only keys read after normalization.
const (
	ColProductID          = "product_id"
	ColProductName        = "product_name"
	ColCategory           = "category"
	ColDiscountedPrice    = "discounted_price"
	ColActualPrice        = "actual_price"
	ColDiscountPercentage = "discount_percentage"
	ColRating             = "rating"
	ColRatingCount        = "rating_count"
	ColAboutProduct       = "about_product"
	ColUserName           = "user_name"
	ColReviewTitle        = "review_title"
	ColReviewContent      = "review_content"
)

var canonicalColumns = map[string]bool{
	ColProductID:          true,
	ColProductName:        true,
	ColCategory:           true,
	ColDiscountedPrice:    true,
	ColActualPrice:        true,
	ColDiscountPercentage: true,
	ColRating:             true,
	ColRatingCount:        true,
	ColAboutProduct:       true,
	ColUserName:           true,
	ColReviewTitle:        true,
	ColReviewContent:      true,
}

// Record is a normalized input row keyed by canonical column name. A key is
// present only when the source carried a cell for it, so absence stays
// distinguishable from an explicit empty string.
type Record map[string]string

var nonKeyChars = regexp.MustCompile(`[^a-z0-9_]`)

// NormalizeKey canonicalizes a spreadsheet header: trimmed, lower-cased,
// spaces to underscores, everything outside [a-z0-9_] removed.
// "Product ID" -> "product_id", "Rating$$" -> "rating".
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, " ", "_")
	return nonKeyChars.ReplaceAllString(key, "")
}

// NormalizeRecord rewrites arbitrary raw keys through NormalizeKey and drops
// any key that is not a canonical column.
func NormalizeRecord(raw map[string]string) Record {
	rec := make(Record, len(raw))
	for key, value := range raw {
		clean := NormalizeKey(key)
		if canonicalColumns[clean] {
			rec[clean] = value
		}
	}
	return rec
}

// Skippable reports whether a normalized record lacks both identity fields.
// Such rows are dropped before any transactional effect; they are never an
// ingestion error.
func (r Record) Skippable() bool {
	return strings.TrimSpace(r[ColProductID]) == "" && strings.TrimSpace(r[ColProductName]) == ""
}
