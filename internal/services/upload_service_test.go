package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-analytics-backend/internal/ingest"
)

func TestBuildProducts(t *testing.T) {
	records := []ingest.Record{
		{
			ingest.ColProductID:     "B001",
			ingest.ColProductName:   "USB Cable",
			ingest.ColCategory:      "Electronics",
			ingest.ColRating:        "4.3",
			ingest.ColReviewContent: "Works fine",
		},
		{
			// Name only is still a valid identity.
			ingest.ColProductName: "Mouse",
		},
		{
			// No identity fields: skipped before any transactional effect.
			ingest.ColAboutProduct: "orphaned description",
		},
		{},
	}

	rows, skipped := buildProducts(records)

	require.Len(t, rows, 2)
	assert.Equal(t, 2, skipped)

	assert.Equal(t, "B001", rows[0].ProductID)
	assert.Equal(t, "USB Cable", rows[0].ProductName)
	// Stored strings stay byte-for-byte what the file carried.
	assert.Equal(t, "4.3", rows[0].Rating)
	assert.Equal(t, "Works fine", rows[0].ReviewContent)

	assert.Empty(t, rows[1].ProductID)
	assert.Equal(t, "Mouse", rows[1].ProductName)
}

func TestBuildProductsEmptyBatch(t *testing.T) {
	rows, skipped := buildProducts(nil)
	assert.Empty(t, rows)
	assert.Zero(t, skipped)
}
