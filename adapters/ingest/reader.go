// Package ingest reads raw (species, sex, size) records from delimited
// text files or spreadsheets and aggregates them into per-species cohorts.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"gossdi/domain/core"
	"gossdi/ports"
)

// Format selects the text-file delimiter
type Format string

const (
	FormatTab Format = "tab"
	FormatCSV Format = "csv"
)

// ParseFormat validates a format flag value
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatTab:
		return FormatTab, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: format must be \"tab\" or \"csv\", got %q", core.ErrUnsupportedInput, s)
	}
}

// FileSource streams tokenized records from a tab/CSV text file or an
// .xlsx workbook (first sheet). The header row is always skipped.
type FileSource struct {
	file *os.File
	csv  *csv.Reader

	// xlsx rows, pre-read; nil when reading a text file
	rows [][]string
	idx  int

	line int
}

// NewFileSource opens path for reading. Workbooks are selected by the
// .xlsx extension; otherwise format picks the text delimiter. An
// unreadable path is fatal before any analysis begins.
func NewFileSource(path string, format Format) (*FileSource, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".xlsx" {
		return newWorkbookSource(path)
	}
	return newTextSource(path, format)
}

func newTextSource(path string, format Format) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.NewInvalidInputError(path, err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	if format == FormatTab {
		r.Comma = '\t'
	}

	src := &FileSource{file: f, csv: r, line: 1}
	if _, err := r.Read(); err != nil && err != io.EOF {
		f.Close()
		return nil, core.NewInvalidInputError(path, err)
	}
	return src, nil
}

func newWorkbookSource(path string) (*FileSource, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, core.NewInvalidInputError(path, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.NewInvalidInputError(path, fmt.Errorf("workbook has no sheets"))
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, core.NewInvalidInputError(path, err)
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}
	return &FileSource{rows: rows, line: 1}, nil
}

// Next returns the next tokenized record, with ok=false at end of input
func (s *FileSource) Next() (ports.RawRecord, bool, error) {
	if s.rows != nil {
		for s.idx < len(s.rows) {
			row := s.rows[s.idx]
			s.idx++
			s.line++
			if isBlank(row) {
				continue
			}
			return ports.RawRecord{Line: s.line, Fields: row}, true, nil
		}
		return ports.RawRecord{}, false, nil
	}

	for {
		fields, err := s.csv.Read()
		if err == io.EOF {
			return ports.RawRecord{}, false, nil
		}
		if err != nil {
			return ports.RawRecord{}, false, fmt.Errorf("reading input: %w", err)
		}
		s.line++
		if isBlank(fields) {
			continue
		}
		return ports.RawRecord{Line: s.line, Fields: fields}, true, nil
	}
}

// Close releases the underlying file, if any
func (s *FileSource) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
