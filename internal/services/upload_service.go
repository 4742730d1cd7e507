// internal/services/upload_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"product-analytics-backend/internal/database"
	"product-analytics-backend/internal/ingest"
	"product-analytics-backend/internal/models"
)

var (
	// ErrParseFailed marks uploads whose content could not be read at all.
	ErrParseFailed = errors.New("failed to parse upload")
	// ErrInsertFailed marks batches rolled back by a storage error.
	ErrInsertFailed = errors.New("database error during insertion")
)

type UploadService struct {
	db *gorm.DB
}

func NewUploadService(db *gorm.DB) *UploadService {
	return &UploadService{db: db}
}

// IngestFile parses the uploaded file into normalized records and bulk-inserts
// them inside a single transaction. Rows missing both identity fields are
// skipped before the transaction opens and never count as failures; any insert
// error rolls the whole batch back. Returns the number of rows inserted.
func (s *UploadService) IngestFile(path string, format ingest.Format) (int, error) {
	records, err := ingest.ParseFile(path, format)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	if len(records) > 0 {
		logrus.WithField("keys", recordKeys(records[0])).Debug("First normalized upload row")
	}

	rows, skipped := buildProducts(records)

	// Zero data rows is a successful no-op upload.
	if len(rows) == 0 {
		logrus.WithFields(logrus.Fields{
			"rows":    len(records),
			"skipped": skipped,
		}).Info("Upload contained no insertable rows")
		return 0, nil
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("Upload batch rolled back")
		return 0, fmt.Errorf("%w: %v", ErrInsertFailed, err)
	}

	logrus.WithFields(logrus.Fields{
		"rows":     len(records),
		"skipped":  skipped,
		"inserted": len(rows),
	}).Info("Upload ingested")

	return len(rows), nil
}

// buildProducts converts normalized records into model rows, dropping records
// that lack both product_id and product_name.
func buildProducts(records []ingest.Record) ([]models.Product, int) {
	rows := make([]models.Product, 0, len(records))
	skipped := 0

	for _, rec := range records {
		if rec.Skippable() {
			skipped++
			logrus.WithField("row", rec).Debug("Skipping row without product_id or product_name")
			continue
		}

		rows = append(rows, models.Product{
			ProductID:          rec[ingest.ColProductID],
			ProductName:        rec[ingest.ColProductName],
			Category:           rec[ingest.ColCategory],
			DiscountedPrice:    rec[ingest.ColDiscountedPrice],
			ActualPrice:        rec[ingest.ColActualPrice],
			DiscountPercentage: rec[ingest.ColDiscountPercentage],
			Rating:             rec[ingest.ColRating],
			RatingCount:        rec[ingest.ColRatingCount],
			AboutProduct:       rec[ingest.ColAboutProduct],
			UserName:           rec[ingest.ColUserName],
			ReviewTitle:        rec[ingest.ColReviewTitle],
			ReviewContent:      rec[ingest.ColReviewContent],
		})
	}

	return rows, skipped
}

func recordKeys(rec ingest.Record) []string {
	keys := make([]string, 0, len(rec))
	for key := range rec {
		keys = append(keys, key)
	}
	return keys
}
