package loaders

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"cookie-analytics/internal/models"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrEmptyInput    = errors.New("input has no header row")
)

// Columns names the exported table's columns the pipeline reads.
type Columns struct {
	Raw         string
	Time        string
	Environment string
}

// DefaultColumns matches a Splunk CSV export.
var DefaultColumns = Columns{Raw: "_raw", Time: "_time", Environment: "index"}

// RowReader is the tabular input adapter in front of the BatchLoader.
type RowReader interface {
	// ReadRows reads a delimited table with a header row into memory.
	ReadRows(r io.Reader) ([]models.RawRow, error)
}

type csvRowReader struct {
	columns Columns
}

func NewCSVRowReader(columns Columns) RowReader {
	return &csvRowReader{columns: columns}
}

func (c *csvRowReader) ReadRows(r io.Reader) ([]models.RawRow, error) {
	reader := csv.NewReader(r)
	// Exports pad short rows inconsistently, and log lines may carry bare quotes.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	rawIdx, err := columnIndex(header, c.columns.Raw)
	if err != nil {
		return nil, err
	}
	timeIdx, err := columnIndex(header, c.columns.Time)
	if err != nil {
		return nil, err
	}
	envIdx, err := columnIndex(header, c.columns.Environment)
	if err != nil {
		return nil, err
	}

	var rows []models.RawRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+1, err)
		}

		rows = append(rows, models.RawRow{
			Raw:         field(record, rawIdx),
			Time:        field(record, timeIdx),
			Environment: field(record, envIdx),
		})
	}

	return rows, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, column := range header {
		// Excel-saved exports start with a UTF-8 BOM.
		if strings.TrimSpace(strings.TrimPrefix(column, "\ufeff")) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}

func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
