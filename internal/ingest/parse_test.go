package ingest

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		filename    string
		want        Format
		wantErr     bool
	}{
		{"csv media type", "text/csv", "data.bin", FormatCSV, false},
		{"xlsx media type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "data", FormatXLSX, false},
		{"xls media type", "application/vnd.ms-excel", "data", FormatXLS, false},
		{"csv extension", "application/octet-stream", "products.csv", FormatCSV, false},
		{"xlsx extension", "", "Products.XLSX", FormatXLSX, false},
		{"xls extension", "", "legacy.xls", FormatXLS, false},
		{"unsupported", "application/pdf", "report.pdf", "", true},
		{"no hints", "", "data", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.contentType, tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		`Product ID,Product Name,Category,Rating$$,Extra Column`,
		`B001,USB Cable,Electronics,4.3,ignored`,
		`B002,"Mouse, Wireless",Electronics,3.9,ignored`,
		`B003,Short Row`,
	}, "\n")

	records, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Record{
		ColProductID:   "B001",
		ColProductName: "USB Cable",
		ColCategory:    "Electronics",
		ColRating:      "4.3",
	}, records[0])

	assert.Equal(t, "Mouse, Wireless", records[1][ColProductName])

	// Short row: trailing columns absent, not empty strings.
	assert.Equal(t, "B003", records[2][ColProductID])
	_, present := records[2][ColCategory]
	assert.False(t, present)
}

func TestParseCSVBOMHeader(t *testing.T) {
	input := "\uFEFFproduct_id,product_name\nB001,USB Cable\n"

	records, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "B001", records[0][ColProductID])
}

func TestParseCSVEmpty(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)

	// Header only, zero data rows.
	records, err = ParseCSV(strings.NewReader("product_id,product_name\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Product ID", "Product Name", "Discount Percentage"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"B001", "USB Cable", "64%"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"B002", "Mouse", "9%"}))

	path := filepath.Join(t.TempDir(), "products.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := ParseFile(path, FormatXLSX)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "64%", records[0][ColDiscountPercentage])
	assert.Equal(t, "Mouse", records[1][ColProductName])
}

func TestParseFileUnsupported(t *testing.T) {
	_, err := ParseFile("whatever.bin", Format("bin"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
