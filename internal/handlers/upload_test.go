package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-analytics-backend/internal/config"
	"product-analytics-backend/internal/services"
)

func newUploadRouter(t *testing.T, maxMB int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewUploadHandler(services.NewUploadService(nil), config.UploadConfig{
		TempDir:     t.TempDir(),
		MaxUploadMB: maxMB,
	})

	r := gin.New()
	r.POST("/api/upload", handler.Upload)
	return r
}

func multipartBody(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadNoFile(t *testing.T) {
	r := newUploadRouter(t, 50)

	req := httptest.NewRequest("POST", "/api/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "No file uploaded", response["error"])
}

func TestUploadUnsupportedFormat(t *testing.T) {
	r := newUploadRouter(t, 50)

	body, contentType := multipartBody(t, "report.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid file format")
}

func TestUploadTooLarge(t *testing.T) {
	r := newUploadRouter(t, 1)

	body, contentType := multipartBody(t, "big.csv", "text/csv", bytes.Repeat([]byte("a"), (1<<20)+1))
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File too large")
}

func TestUploadEmptyCSV(t *testing.T) {
	r := newUploadRouter(t, 50)

	// Zero data rows is a successful no-op, not an error.
	body, contentType := multipartBody(t, "empty.csv", "text/csv", []byte("product_id,product_name\n"))
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(0), response["count"])
	assert.Equal(t, "File processed and data inserted successfully", response["message"])
}
