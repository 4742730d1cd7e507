// internal/handlers/upload.go
package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"product-analytics-backend/internal/config"
	"product-analytics-backend/internal/ingest"
	"product-analytics-backend/internal/services"
	"product-analytics-backend/internal/utils"
)

type UploadHandler struct {
	uploadService *services.UploadService
	uploadConfig  config.UploadConfig
}

func NewUploadHandler(uploadService *services.UploadService, uploadConfig config.UploadConfig) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		uploadConfig:  uploadConfig,
	}
}

// POST /api/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file uploaded")
		return
	}

	if file.Size > h.uploadConfig.MaxUploadMB<<20 {
		utils.BadRequestResponse(c, "File too large")
		return
	}

	format, err := ingest.DetectFormat(file.Header.Get("Content-Type"), file.Filename)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid file format. Please upload CSV or Excel.")
		return
	}

	// Spool to a temp path; the spreadsheet parsers need a file on disk.
	tempPath := filepath.Join(h.uploadConfig.TempDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		logrus.WithError(err).Error("Failed to save upload to temp storage")
		utils.InternalErrorResponse(c, "Error processing file")
		return
	}
	defer func() {
		// Best-effort cleanup; never masks the request outcome.
		if err := os.Remove(tempPath); err != nil {
			logrus.WithError(err).Warn("Failed to remove temp upload")
		}
	}()

	count, err := h.uploadService.IngestFile(tempPath, format)
	if err != nil {
		if errors.Is(err, services.ErrInsertFailed) {
			utils.InternalErrorResponse(c, "Database error during insertion")
			return
		}
		utils.InternalErrorResponse(c, "Error processing file")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File processed and data inserted successfully",
		"count":   count,
	})
}
