// internal/ingest/parse.go
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Format is the declared type of an uploaded file.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// ErrUnsupportedFormat is returned before any parsing when the upload is
// neither CSV nor a spreadsheet.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// DetectFormat resolves the upload format from the declared media type or the
// filename extension, in that order.
func DetectFormat(contentType, filename string) (Format, error) {
	// Strip any "; charset=..." parameter.
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(contentType)

	switch contentType {
	case "text/csv", "application/csv":
		return FormatCSV, nil
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return FormatXLSX, nil
	case "application/vnd.ms-excel":
		return FormatXLS, nil
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	}

	return "", ErrUnsupportedFormat
}

// ParseFile reads the whole upload into an ordered slice of normalized
// records. The file is buffered in full before any storage work begins.
func ParseFile(path string, format Format) ([]Record, error) {
	switch format {
	case FormatCSV:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open upload: %w", err)
		}
		defer f.Close()
		return ParseCSV(f)
	case FormatXLSX:
		return ParseXLSX(path)
	case FormatXLS:
		return ParseXLS(path)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ParseCSV reads header-mapped CSV rows. Ragged rows are tolerated: short
// rows leave the trailing columns absent, extra cells are ignored.
func ParseCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Excel exports often prefix the first header cell with a UTF-8 BOM.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	columns := headerColumns(header)

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		records = append(records, rowToRecord(columns, row))
	}

	return records, nil
}

// ParseXLSX converts the first sheet of a modern workbook, first row as
// header.
func ParseXLSX(path string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return sheetToRecords(rows), nil
}

// ParseXLS converts the first sheet of a legacy binary workbook.
func ParseXLS(path string) ([]Record, error) {
	wb, closer, err := xls.OpenWithCloser(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer closer.Close()

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}

		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}

	return sheetToRecords(rows), nil
}

// headerColumns normalizes a header row into per-index canonical column
// names; non-canonical columns come back empty and their cells are ignored.
func headerColumns(header []string) []string {
	columns := make([]string, len(header))
	for i, key := range header {
		if clean := NormalizeKey(key); canonicalColumns[clean] {
			columns[i] = clean
		}
	}
	return columns
}

func rowToRecord(columns []string, row []string) Record {
	rec := make(Record, len(columns))
	for i, column := range columns {
		if column == "" || i >= len(row) {
			continue
		}
		rec[column] = row[i]
	}
	return rec
}

func sheetToRecords(rows [][]string) []Record {
	if len(rows) == 0 {
		return nil
	}

	columns := headerColumns(rows[0])

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, rowToRecord(columns, row))
	}
	return records
}
